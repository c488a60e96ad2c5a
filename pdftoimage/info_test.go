package pdftoimage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/pdf-to-image/pdftoimage"
)

func TestParseInfoOutput(t *testing.T) {
	t.Parallel()

	t.Run("Typical report", func(t *testing.T) {
		t.Parallel()

		output := "Title:          Test Doc\n" +
			"Author:         Me\n" +
			"Pages:          15\n" +
			"Encrypted:      no\n"
		fields := pdftoimage.ParseInfoOutputForTest(output)
		assert.Equal(t, "Test Doc", fields["Title"])
		assert.Equal(t, "Me", fields["Author"])
		assert.Equal(t, "15", fields["Pages"])
		assert.Equal(t, "no", fields["Encrypted"])
	})

	t.Run("Values keep their own colons", func(t *testing.T) {
		t.Parallel()

		fields := pdftoimage.ParseInfoOutputForTest("Title: Report: Final\n")
		assert.Equal(t, "Report: Final", fields["Title"])
	})

	t.Run("Blank lines are skipped", func(t *testing.T) {
		t.Parallel()

		fields := pdftoimage.ParseInfoOutputForTest("\nPages: 2\n\n   \n")
		assert.Len(t, fields, 1)
		assert.Equal(t, "2", fields["Pages"])
	})

	t.Run("Repeated keys keep the last value", func(t *testing.T) {
		t.Parallel()

		fields := pdftoimage.ParseInfoOutputForTest("Pages: 1\nPages: 9\n")
		assert.Equal(t, "9", fields["Pages"])
	})

	t.Run("Lines without a colon become empty fields", func(t *testing.T) {
		t.Parallel()

		fields := pdftoimage.ParseInfoOutputForTest("garbage line\n")
		assert.Equal(t, "", fields["garbage line"])
	})
}

func TestPageCountFromFields(t *testing.T) {
	t.Parallel()

	t.Run("Valid count", func(t *testing.T) {
		t.Parallel()

		pages, err := pdftoimage.PageCountFromFieldsForTest(
			map[string]string{"Pages": "7"},
		)
		require.NoError(t, err)
		assert.Equal(t, 7, pages)
	})

	t.Run("Missing field", func(t *testing.T) {
		t.Parallel()

		_, err := pdftoimage.PageCountFromFieldsForTest(
			map[string]string{"Title": "Doc"},
		)
		require.ErrorIs(t, err, pdftoimage.ErrPageCountUnavailable)
	})

	t.Run("Empty value", func(t *testing.T) {
		t.Parallel()

		_, err := pdftoimage.PageCountFromFieldsForTest(
			map[string]string{"Pages": ""},
		)
		require.ErrorIs(t, err, pdftoimage.ErrPageCountUnavailable)
	})

	t.Run("Non-numeric value", func(t *testing.T) {
		t.Parallel()

		_, err := pdftoimage.PageCountFromFieldsForTest(
			map[string]string{"Pages": "many"},
		)
		require.ErrorIs(t, err, pdftoimage.ErrPageCountUnavailable)
	})

	t.Run("Zero pages", func(t *testing.T) {
		t.Parallel()

		_, err := pdftoimage.PageCountFromFieldsForTest(
			map[string]string{"Pages": "0"},
		)
		require.ErrorIs(t, err, pdftoimage.ErrZeroOrNegativePages)
	})

	t.Run("Negative pages", func(t *testing.T) {
		t.Parallel()

		_, err := pdftoimage.PageCountFromFieldsForTest(
			map[string]string{"Pages": "-3"},
		)
		require.ErrorIs(t, err, pdftoimage.ErrZeroOrNegativePages)
	})
}

func TestInfo(t *testing.T) {
	t.Parallel()

	converter, fake := newTestConverter(t, nil)
	fake.onRunCombined = func(_ string, _ []string) ([]byte, error) {
		report := "Title:          Report: Final\n" +
			"Producer:       GPL Ghostscript\n" +
			"Pages:          7\n"

		return []byte(report), nil
	}

	info, infoErr := converter.Info(
		context.Background(),
		"doc.pdf",
		pdftoimage.InfoOptions{
			UserPassword:  "",
			OwnerPassword: "",
			Timeout:       0,
			RawDates:      false,
		},
	)
	require.NoError(t, infoErr)

	assert.Equal(t, 7, info.Pages)
	assert.Equal(t, "Report: Final", info.Fields["Title"])
	assert.Equal(t, "7", info.Fields["Pages"])

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"pdfinfo", "doc.pdf"}, fake.calls[0])
}

func TestInfo_PassesSwitchesAndBinDir(t *testing.T) {
	t.Parallel()

	binDir := filepath.Join("opt", "poppler", "bin")

	converter, fake := newTestConverter(t, &pdftoimage.Options{
		ProgressBarOutput: nil,
		BinDir:            binDir,
	})
	fake.onRunCombined = pagesReport("2")

	_, infoErr := converter.Info(
		context.Background(),
		`"doc.pdf"`,
		pdftoimage.InfoOptions{
			UserPassword:  "user-secret",
			OwnerPassword: "owner-secret",
			Timeout:       0,
			RawDates:      true,
		},
	)
	require.NoError(t, infoErr)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{
		pdftoimage.CommandPathForTest("pdfinfo", binDir),
		"-upw", "user-secret",
		"-opw", "owner-secret",
		"-rawdates",
		"doc.pdf",
	}, fake.calls[0])
}

func TestInfo_ToolFailure(t *testing.T) {
	t.Parallel()

	converter, fake := newTestConverter(t, nil)
	fake.onRunCombined = func(_ string, _ []string) ([]byte, error) {
		return []byte("I/O Error: file not found"), errors.New("exit status 1")
	}

	_, infoErr := converter.Info(
		context.Background(),
		"missing.pdf",
		pdftoimage.InfoOptions{
			UserPassword:  "",
			OwnerPassword: "",
			Timeout:       0,
			RawDates:      false,
		},
	)
	require.ErrorIs(t, infoErr, pdftoimage.ErrToolFailed)
	assert.ErrorContains(t, infoErr, "I/O Error")
}

func TestInfo_Timeout(t *testing.T) {
	t.Parallel()

	converter, fake := newTestConverter(t, nil)
	fake.onRunCombined = func(_ string, _ []string) ([]byte, error) {
		return nil, context.DeadlineExceeded
	}

	_, infoErr := converter.Info(
		context.Background(),
		"doc.pdf",
		pdftoimage.InfoOptions{
			UserPassword:  "",
			OwnerPassword: "",
			Timeout:       50 * time.Millisecond,
			RawDates:      false,
		},
	)
	require.ErrorIs(t, infoErr, pdftoimage.ErrToolTimeout)
}

func TestInfo_EmptySourcePath(t *testing.T) {
	t.Parallel()

	converter, _ := newTestConverter(t, nil)

	_, infoErr := converter.Info(
		context.Background(),
		`""`,
		pdftoimage.InfoOptions{
			UserPassword:  "",
			OwnerPassword: "",
			Timeout:       0,
			RawDates:      false,
		},
	)
	require.ErrorIs(t, infoErr, pdftoimage.ErrSourcePathRequired)
}

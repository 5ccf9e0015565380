package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAttachmentList_Set tests the Set method of attachmentList
func TestAttachmentList_Set(t *testing.T) {
	tests := []struct {
		name        string
		inputs      []string
		expectError bool
		expected    attachmentList
	}{
		{
			name:     "single attachment",
			inputs:   []string{"annex.pdf"},
			expected: attachmentList{"annex.pdf"},
		},
		{
			name:     "order preserved",
			inputs:   []string{"b.pdf", "a.docx", "c.xlsx"},
			expected: attachmentList{"b.pdf", "a.docx", "c.xlsx"},
		},
		{
			name:        "empty value rejected",
			inputs:      []string{""},
			expectError: true,
		},
		{
			name:        "whitespace-only value rejected",
			inputs:      []string{"   "},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list attachmentList
			var err error
			for _, in := range tt.inputs {
				err = list.Set(in)
				if err != nil {
					break
				}
			}

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errEmptyAttachmentPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, list)
		})
	}
}

// TestAttachmentList_String tests the String method of attachmentList
func TestAttachmentList_String(t *testing.T) {
	tests := []struct {
		name     string
		list     attachmentList
		expected string
	}{
		{name: "empty list", list: attachmentList{}, expected: ""},
		{name: "single entry", list: attachmentList{"annex.pdf"}, expected: "annex.pdf"},
		{name: "multiple entries", list: attachmentList{"a.pdf", "b.docx"}, expected: "a.pdf,b.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.list.String())
		})
	}
}

func resetFlags(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"asingest"}, args...)
}

func TestParseFlags_FullInvocation(t *testing.T) {
	resetFlags(t,
		"-a", "annex1.pdf",
		"-a", "annex2.docx",
		"-m", `{"title":"Q2 Report"}`,
		"-c", "custom.json",
		"-d", "journal.db",
		"-client-id", "custom-sync",
		"-request-timeout", "45s",
		"-v",
		"report.pdf",
	)

	cfg := ParseFlags()

	assert.Equal(t, "report.pdf", cfg.Job.Document)
	assert.Equal(t, []string{"annex1.pdf", "annex2.docx"}, cfg.Job.Attachments)
	assert.Equal(t, `{"title":"Q2 Report"}`, cfg.Job.Metadata)
	assert.Equal(t, "custom.json", cfg.JSONFilePath)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "custom-sync", cfg.Ingestion.ClientID)
	assert.Equal(t, 45*time.Second, cfg.Ingestion.RequestTimeout)
	assert.True(t, cfg.App.Verbose)
}

func TestParseFlags_Defaults(t *testing.T) {
	resetFlags(t, "report.pdf")

	cfg := ParseFlags()

	assert.Equal(t, "report.pdf", cfg.Job.Document)
	assert.Empty(t, cfg.Job.Attachments)
	assert.Empty(t, cfg.Job.Metadata)
	assert.Equal(t, "alphasense.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Ingestion.ClientID)
	assert.Zero(t, cfg.Ingestion.RequestTimeout)
	assert.False(t, cfg.App.Verbose)
}

func TestParseFlags_NoDocument(t *testing.T) {
	resetFlags(t)

	cfg := ParseFlags()

	// Отсутствие документа ловит validate(), не парсер флагов
	assert.Empty(t, cfg.Job.Document)
}

package config

import (
	"flag"
	"strings"
	"time"
)

// attachmentList collects the values of a repeatable string flag while
// preserving the order they were given on the command line.
// It implements the flag.Value interface.
type attachmentList []string

// String returns the list as a comma-separated string.
func (a *attachmentList) String() string {
	return strings.Join(*a, ",")
}

// Set appends one attachment path to the list. Empty values are rejected so
// `-a ""` cannot silently produce an empty part in the upload request.
func (a *attachmentList) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyAttachmentPath
	}

	*a = append(*a, s)
	return nil
}

// ParseFlags parses all configuration flags.
//
// The first positional argument is the path of the document to upload.
//
// Flags:
//
//	-a attachment file path (repeatable)
//	-m metadata source: path to a JSON file, or an inline JSON string
//	-c/-config json file path with configs (default "alphasense.json")
//	-d journal database DSN
//	-client-id clientId header value for upload requests
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-v enable verbose logging
func ParseFlags() *StructuredConfig {
	var attachments attachmentList
	var metadataSource string
	var jsonConfigPath string
	var journalDSN string
	var uploadClientID string
	var requestTimeout time.Duration
	var verbose bool

	flag.Var(&attachments, "a", "Attachment file path (repeatable)")
	flag.StringVar(&metadataSource, "m", "", "Metadata: JSON file path or inline JSON")
	flag.StringVar(&jsonConfigPath, "c", "alphasense.json", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "alphasense.json", "JSON config file path (alias)")
	flag.StringVar(&journalDSN, "d", "", "Journal database DSN")
	flag.StringVar(&uploadClientID, "client-id", "", "clientId header for upload requests")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging")

	flag.Parse()

	return &StructuredConfig{
		Ingestion: Ingestion{
			ClientID:       uploadClientID,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: journalDSN,
			},
		},
		Job: Job{
			Document:    flag.Arg(0),
			Attachments: attachments,
			Metadata:    metadataSource,
		},
		App: App{
			Verbose: verbose,
		},
		JSONFilePath: jsonConfigPath,
	}
}

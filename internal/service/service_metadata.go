package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/models"
)

type metadataService struct {
	logger *logger.Logger
}

// NewMetadataService constructs the [MetadataService].
func NewMetadataService(logger *logger.Logger) MetadataService {
	return &metadataService{logger: logger}
}

// Resolve implements [MetadataService]. The source is interpreted exactly the
// way the CLI documents it: a value ending in ".json" is a file path, any
// other non-empty value is inline JSON, and an empty value substitutes the
// fixed default object.
func (s *metadataService) Resolve(source string) (models.DocumentMetadata, error) {
	if source == "" {
		s.logger.Debug().Msg("no metadata source given, using default metadata")
		return models.DefaultDocumentMetadata(), nil
	}

	if strings.HasSuffix(source, ".json") {
		return s.resolveFromFile(source)
	}

	return parseMetadataJSON([]byte(source))
}

func (s *metadataService) resolveFromFile(path string) (models.DocumentMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: metadata file not found: %s", ErrConfiguration, path)
		}
		return nil, fmt.Errorf("%w: read metadata file %s: %v", ErrConfiguration, path, err)
	}

	s.logger.Debug().Str("path", path).Msg("metadata loaded from file")

	return parseMetadataJSON(data)
}

func parseMetadataJSON(data []byte) (models.DocumentMetadata, error) {
	var metadata models.DocumentMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	return metadata, nil
}

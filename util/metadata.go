package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/tzip/version"
)

// MetadataExt is appended when Metadata.Save is given a directory.
const MetadataExt = ".tzipm"

// Metadata describes one archive run. It is written next to the archive on
// request and never embedded in the archive itself.
type Metadata struct {
	Archive          string      `json:"archive"`
	Codec            string      `json:"codec"`
	CompressedSize   int64       `json:"compressed_size"`
	FileCount        int         `json:"file_count"`
	Fingerprint      Fingerprint `json:"fingerprint"`
	FrameCount       int         `json:"frame_count"`
	Frames           []string    `json:"frames"`
	Ratio            float64     `json:"ratio"`
	Skipped          []string    `json:"skipped,omitempty"`
	SourceDir        string      `json:"source_dir"`
	TzipVersion      string      `json:"tzip_version"`
	UncompressedSize int64       `json:"uncompressed_size"`
	Workers          int         `json:"workers"`
}

// GetVersion returns the current tzip version string.
// It delegates to the version package to get the version information.
func GetVersion() string {
	return version.GetVersion()
}

// Save writes m as JSON. A path without the metadata extension is treated as
// a directory and gets a "metadata.tzipm" file inside it.
func (m Metadata) Save(path string) error {
	if !strings.HasSuffix(path, MetadataExt) {
		path = filepath.Join(path, "metadata"+MetadataExt)
	}
	if m.TzipVersion == "" {
		m.TzipVersion = GetVersion()
	}
	return WriteJSONFile(path, m)
}

// WriteJSONFile writes any value as JSON to the specified file path.
// It creates the file and encodes the value using the standard JSON encoder.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ReadMetadata loads a metadata file written by Save.
func ReadMetadata(path string) (Metadata, error) {
	var m Metadata
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&m)
	return m, err
}

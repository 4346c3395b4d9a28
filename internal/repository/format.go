package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

// Store formats.
const (
	formatJSON    = "json"
	formatBSON    = "bson"
	formatYAML    = "yaml"
	formatUnknown = "unknown"
)

// decodeFunc decodes a single cluster out of a whole store file.
type decodeFunc func(data []byte, clusterKey string) (*storedCluster, error)

var decoders = map[string]decodeFunc{
	formatJSON: decodeJSON,
	formatBSON: decodeBSON,
	formatYAML: decodeYAML,
}

func formatOf(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return formatJSON
	case ".bson":
		return formatBSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatUnknown
	}
}

func clusterNotFound(clusterKey string) error {
	return fmt.Errorf("%w: cluster %q is not in the store", ErrNotFound, clusterKey)
}

func decodeJSON(data []byte, clusterKey string) (*storedCluster, error) {
	var store map[string]json.RawMessage
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: failed to decode json store: %w", ErrCorruptStore, err)
	}

	raw, ok := store[clusterKey]
	if !ok {
		return nil, clusterNotFound(clusterKey)
	}

	sc := new(storedCluster)
	if err := json.Unmarshal(raw, sc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cluster %q: %w", ErrCorruptStore, clusterKey, err)
	}

	return sc, nil
}

func decodeBSON(data []byte, clusterKey string) (*storedCluster, error) {
	store := bson.Raw(data)
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bson store: %w", ErrCorruptStore, err)
	}

	// the document is valid, so a failed lookup means a missing key
	val, err := store.LookupErr(clusterKey)
	if err != nil {
		return nil, clusterNotFound(clusterKey)
	}

	doc, ok := val.DocumentOK()
	if !ok {
		return nil, fmt.Errorf("%w: cluster %q is a %s, not a document", ErrCorruptStore, clusterKey, val.Type)
	}

	sc := new(storedCluster)
	if err := bson.Unmarshal(doc, sc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cluster %q: %w", ErrCorruptStore, clusterKey, err)
	}

	return sc, nil
}

func decodeYAML(data []byte, clusterKey string) (*storedCluster, error) {
	var store map[string]yaml.Node
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: failed to decode yaml store: %w", ErrCorruptStore, err)
	}

	node, ok := store[clusterKey]
	if !ok {
		return nil, clusterNotFound(clusterKey)
	}

	sc := new(storedCluster)
	if err := node.Decode(sc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cluster %q: %w", ErrCorruptStore, clusterKey, err)
	}

	return sc, nil
}

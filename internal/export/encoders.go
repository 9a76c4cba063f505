package export

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func init() {
	Register("yaml", encodeYAML)
	Register("json", encodeJSON)
	Register("msgpack", encodeMsgpack)
}

func encodeYAML(s *Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

func encodeJSON(s *Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func encodeMsgpack(s *Snapshot) ([]byte, error) {
	return msgpack.Marshal(s)
}

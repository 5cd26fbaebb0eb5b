package words

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TargetFile is the YAML layout accepted by ImportYAML. A bare sequence of
// words is also accepted.
//
//	participant: alex
//	targets:
//	  - because
//	  - through
type TargetFile struct {
	Participant string   `yaml:"participant"`
	Targets     []string `yaml:"targets"`
}

// ImportYAML reads a target list from r and normalizes it.
func ImportYAML(r io.Reader) (TargetFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return TargetFile{}, fmt.Errorf("read word file: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return TargetFile{}, fmt.Errorf("parse word file: %w", err)
	}

	var tf TargetFile
	if node.Kind == 0 {
		return tf, nil
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		if err := node.Content[0].Decode(&tf.Targets); err != nil {
			return TargetFile{}, fmt.Errorf("decode word list: %w", err)
		}
	} else if err := node.Decode(&tf); err != nil {
		return TargetFile{}, fmt.Errorf("decode word file: %w", err)
	}

	list, err := Parse(tf.Targets)
	if err != nil {
		return TargetFile{}, err
	}
	tf.Targets = list
	return tf, nil
}

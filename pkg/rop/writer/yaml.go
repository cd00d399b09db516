package writer

import "gopkg.in/yaml.v3"

// MarshalYAML renders the writer as a mapping of channel to sequence, keeping
// channel creation order.
func (w Writer) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, ch := range w.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ch}
		values := &yaml.Node{}
		if err := values.Encode(w.channels[ch]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, values)
	}
	return node, nil
}

// Dump encodes the writer as a YAML document.
func (w Writer) Dump() ([]byte, error) {
	return yaml.Marshal(w)
}

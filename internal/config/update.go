package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/pagedots/internal/errors"
	"gopkg.in/yaml.v3"
)

// configHeader is written at the top of new config files.
const configHeader = "# pagedots configuration. See 'pagedots config' for the resolved values.\n"

// Marshal encodes cfg as YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(buf.String()), nil
}

// Write saves cfg to path. An existing file is only replaced when force is set.
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Use --force to overwrite it")
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Failed to write config file: "+path,
			"Check that the directory exists and is writable")
	}
	return nil
}

// SetValue updates a single key in the config file at path, keeping the rest
// of the YAML structure and comments. key is dotted for nested values
// ("colors.page"). The edited file must still validate, or nothing is written.
func SetValue(path, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Failed to read config file: "+path,
			"Run 'pagedots init' to create one")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file: "+path,
			"Check the YAML syntax")
	}

	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Expected a mapping at the top of "+path,
			"Check the YAML structure")
	}

	if err := setPath(root.Content[0], strings.Split(key, "."), value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Run 'pagedots config' to see the available keys")
	}

	cfg := DefaultConfig()
	if err := root.Decode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' can't be set to '%s'", key, value),
			"Check the value's type")
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Failed to write config file: "+path,
			"Check file permissions")
	}
	return nil
}

// settableKeys lists the keys SetValue accepts and whether they hold a list.
var settableKeys = map[string]bool{
	"version":           false,
	"pages":             false,
	"spacing":           false,
	"height":            false,
	"collapse_duration": false,
	"expand_duration":   false,
	"fill_durations":    true,
	"autoplay":          false,
	"colors.page":       false,
	"colors.current":    false,
	"log_file":          false,
}

// setPath walks or creates nested mappings for path and stores value at the
// leaf. List keys take a comma-separated value.
func setPath(node *yaml.Node, path []string, value string) error {
	full := strings.Join(path, ".")
	isList, ok := settableKeys[full]
	if !ok {
		return fmt.Errorf("unknown config key '%s'", full)
	}

	for _, name := range path[:len(path)-1] {
		child := findMapValue(node, name)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalar(name), child)
		}
		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("'%s' is not a mapping", name)
		}
		node = child
	}

	leaf := scalar(value)
	leaf.Tag = ""
	if isList {
		leaf = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, item := range strings.Split(value, ",") {
			leaf.Content = append(leaf.Content, scalar(strings.TrimSpace(item)))
		}
	}

	name := path[len(path)-1]
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == name {
			leaf.HeadComment = node.Content[i+1].HeadComment
			leaf.LineComment = node.Content[i+1].LineComment
			node.Content[i+1] = leaf
			return nil
		}
	}
	node.Content = append(node.Content, scalar(name), leaf)
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// findMapValue finds a value node by key in a mapping node.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	// Mapping nodes have alternating key/value pairs in Content
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

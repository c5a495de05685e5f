// Package manifest reads declaration manifests, the host's export of every
// type declaration in a program, and turns them into a decl.Program.
//
// A manifest is a YAML, JSON or TOML document:
//
//	version: "1.0"
//	types:
//	  - name: Test
//	    namespace: TestSpace
//	    kind: class
//	    access: public
//	    members:
//	      - kind: property
//	        name: Name
//	        type: string?
//	        accessors: [get, set]
//
// Fragments of a partial type are separate entries with the same namespace,
// containing types and name. Several manifest files are merged in the order
// given, which becomes the discovery order.
package manifest

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/teranos/autodeconstruct/errors"
	"gopkg.in/yaml.v3"
)

// File is one decoded manifest document.
type File struct {
	Version  string     `yaml:"version" json:"version" toml:"version"`
	RootType string     `yaml:"root_type,omitempty" json:"root_type,omitempty" toml:"root_type,omitempty"`
	Types    []TypeSpec `yaml:"types" json:"types" toml:"types"`
}

// TypeSpec is one declaration fragment.
type TypeSpec struct {
	Name           string   `yaml:"name" json:"name" toml:"name"`
	Namespace      string   `yaml:"namespace,omitempty" json:"namespace,omitempty" toml:"namespace,omitempty"`
	Containing     []string `yaml:"containing,omitempty" json:"containing,omitempty" toml:"containing,omitempty"`
	Kind           string   `yaml:"kind,omitempty" json:"kind,omitempty" toml:"kind,omitempty"`
	Access         string   `yaml:"access,omitempty" json:"access,omitempty" toml:"access,omitempty"`
	Base           string   `yaml:"base,omitempty" json:"base,omitempty" toml:"base,omitempty"`
	TypeParameters []string `yaml:"type_parameters,omitempty" json:"type_parameters,omitempty" toml:"type_parameters,omitempty"`
	External       bool     `yaml:"external,omitempty" json:"external,omitempty" toml:"external,omitempty"`

	// Positional is the primary constructor parameter list of a record
	Positional []ParameterSpec `yaml:"positional,omitempty" json:"positional,omitempty" toml:"positional,omitempty"`

	Members []MemberSpec `yaml:"members,omitempty" json:"members,omitempty" toml:"members,omitempty"`
}

// MemberSpec is one member of a fragment.
type MemberSpec struct {
	Kind   string `yaml:"kind" json:"kind" toml:"kind"`
	Name   string `yaml:"name" json:"name" toml:"name"`
	Static bool   `yaml:"static,omitempty" json:"static,omitempty" toml:"static,omitempty"`
	Access string `yaml:"access,omitempty" json:"access,omitempty" toml:"access,omitempty"`

	// Type is the property/field type or the method return type; a trailing
	// "?" marks a nullable annotation
	Type string `yaml:"type,omitempty" json:"type,omitempty" toml:"type,omitempty"`

	// Accessors lists property accessors as "[accessibility] get|set|init",
	// e.g. ["get", "private set"]
	Accessors []string `yaml:"accessors,omitempty" json:"accessors,omitempty" toml:"accessors,omitempty"`

	Parameters []ParameterSpec `yaml:"parameters,omitempty" json:"parameters,omitempty" toml:"parameters,omitempty"`
}

// ParameterSpec is a method or positional parameter.
type ParameterSpec struct {
	Name     string `yaml:"name" json:"name" toml:"name"`
	Type     string `yaml:"type" json:"type" toml:"type"`
	Modifier string `yaml:"modifier,omitempty" json:"modifier,omitempty" toml:"modifier,omitempty"`
}

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrInvalidManifest, "unrecognized manifest extension %q", filepath.Ext(path)),
			"use .yaml, .yml, .json or .toml",
		)
	}
}

// Decode parses one manifest document.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	default:
		return nil, errors.Newf("unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidManifest), "failed to decode manifest")
	}

	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	return &f, nil
}

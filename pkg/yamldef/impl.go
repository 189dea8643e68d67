/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package yamldef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/omodel/omodel/pkg/attrdef"
)

type modelDef struct {
	Types []typeDef `yaml:"types"`
}

type typeDef struct {
	Name     string    `yaml:"name"`
	Ancestor string    `yaml:"ancestor,omitempty"`
	Comment  string    `yaml:"comment,omitempty"`
	Attrs    []attrDef `yaml:"attrs,omitempty"`
}

type attrDef struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Ops      []string `yaml:"ops"`
	Nullable bool     `yaml:"nullable,omitempty"`
	Comment  string   `yaml:"comment,omitempty"`
}

func parseModel(data []byte) (*modelDef, error) {
	def := &modelDef{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return nil, fmt.Errorf("malformed model document: %w", err)
	}

	return def, nil
}

// build validates the document and drives the model builder.
//
// The builder treats bad input as programmer error and panics, so the
// document is fully checked first and every defect is reported as an
// error. Checks the builder's Build performs itself, such as ancestor
// chain collisions and the single root rule, are left to it
func (def *modelDef) build() (attrdef.IModel, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}

	b := attrdef.New()

	types := make(map[string]attrdef.ITypeBuilder)
	for _, t := range def.Types {
		tb := b.AddType(attrdef.MustParseQName(t.Name))
		if t.Comment != "" {
			tb.SetComment(strings.Split(t.Comment, "\n")...)
		}
		types[t.Name] = tb
	}

	for _, t := range def.Types {
		tb := types[t.Name]
		if t.Ancestor != "" {
			tb.SetAncestor(attrdef.MustParseQName(t.Ancestor))
		}
		for _, a := range t.Attrs {
			kind, _ := parseKind(a.Kind)
			ops, _ := parseOps(a.Ops)
			if a.Nullable {
				tb.AddNullableAttr(a.Name, kind, ops)
			} else {
				tb.AddAttr(a.Name, kind, ops)
			}
			if a.Comment != "" {
				tb.SetAttrComment(a.Name, strings.Split(a.Comment, "\n")...)
			}
		}
	}

	return b.Build()
}

func (def *modelDef) validate() (err error) {
	if len(def.Types) == 0 {
		return attrdef.ErrDefinition("document declares no types")
	}

	declared := make(map[string]bool)
	for _, t := range def.Types {
		q, e := attrdef.ParseQName(t.Name)
		if e == nil {
			_, e = attrdef.ValidQName(q)
		}
		if e != nil {
			err = errors.Join(err, attrdef.ErrDefinition("type name «%s»: %v", t.Name, e))
			continue
		}
		if declared[t.Name] {
			err = errors.Join(err, attrdef.ErrDefinition("type «%s» is declared twice", t.Name))
			continue
		}
		declared[t.Name] = true
	}
	if err != nil {
		return err
	}

	ancestors := make(map[string]string)
	for _, t := range def.Types {
		if t.Ancestor != "" {
			if !declared[t.Ancestor] {
				err = errors.Join(err, attrdef.ErrDefinition("type «%s»: ancestor «%s» is not declared", t.Name, t.Ancestor))
				continue
			}
			ancestors[t.Name] = t.Ancestor
		}
		err = errors.Join(err, validateTypeAttrs(t))
	}
	if err != nil {
		return err
	}

	for _, t := range def.Types {
		visited := map[string]bool{t.Name: true}
		for anc := ancestors[t.Name]; anc != ""; anc = ancestors[anc] {
			if visited[anc] {
				return attrdef.ErrDefinition("type «%s»: inheritance is cyclic", t.Name)
			}
			visited[anc] = true
		}
	}

	return nil
}

func validateTypeAttrs(t typeDef) (err error) {
	if len(t.Attrs) > attrdef.MaxTypeAttrCount {
		err = attrdef.ErrDefinition("type «%s» declares too many attributes", t.Name)
	}

	names := make(map[string]bool)
	for _, a := range t.Attrs {
		if ok, e := attrdef.ValidAttrName(a.Name); !ok {
			err = errors.Join(err, attrdef.ErrDefinition("type «%s»: attribute name «%s» is not valid: %v", t.Name, a.Name, e))
			continue
		}
		if names[a.Name] {
			err = errors.Join(err, attrdef.ErrDefinition("type «%s»: attribute «%s» is declared twice", t.Name, a.Name))
			continue
		}
		names[a.Name] = true

		if _, e := parseKind(a.Kind); e != nil {
			err = errors.Join(err, attrdef.ErrDefinition("type «%s», attribute «%s»: %v", t.Name, a.Name, e))
		}
		if _, e := parseOps(a.Ops); e != nil {
			err = errors.Join(err, attrdef.ErrDefinition("type «%s», attribute «%s»: %v", t.Name, a.Name, e))
		}
	}

	return err
}

func parseKind(s string) (attrdef.Kind, error) {
	for k := attrdef.Kind_null + 1; k < attrdef.Kind_FakeLast; k++ {
		if strings.EqualFold(s, k.TrimString()) {
			return k, nil
		}
	}
	return attrdef.Kind_null, attrdef.ErrInvalid("value kind «%s» is not known", s)
}

func parseOps(ss []string) (attrdef.Ops, error) {
	if len(ss) == 0 {
		return attrdef.NullOps, attrdef.ErrMissed("attribute declares no operations")
	}

	ops := attrdef.NullOps
	for _, s := range ss {
		found := false
		for o := attrdef.Op(0); o < attrdef.Op_Count; o++ {
			if strings.EqualFold(s, o.TrimString()) {
				ops = attrdef.OpsFrom(o) | ops
				found = true
				break
			}
		}
		if !found {
			return attrdef.NullOps, attrdef.ErrInvalid("operation «%s» is not known", s)
		}
	}
	return ops, nil
}

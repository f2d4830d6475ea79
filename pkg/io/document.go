package io

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/node"
)

// document is the serialized form of one node. Description is optional;
// when present it must match what the node describes itself as, so the
// tree formats written by the exporters read back unchanged.
type document struct {
	Kind        string     `json:"kind" yaml:"kind" toml:"kind" validate:"required,nodekind"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Children    []document `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" validate:"dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("nodekind", func(fl validator.FieldLevel) bool {
		_, err := node.ParseKind(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(document)
		k, err := node.ParseKind(d.Kind)
		if err != nil {
			return
		}
		if k.IsLeaf() && len(d.Children) > 0 {
			sl.ReportError(d.Children, "Children", "children", "leafchildren", "")
		}
		if d.Description != "" && d.Description != description(k) {
			sl.ReportError(d.Description, "Description", "description", "description", description(k))
		}
	}, document{})
	return v
}

// check validates the whole document tree, reporting every problem.
func (d document) check() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.ErrCodeInternal, err, "validate document")
	}

	var errs error
	for _, fe := range fieldErrs {
		errs = multierr.Append(errs, fmt.Errorf("%s: %s", location(fe.Namespace()), describe(fe)))
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, errs, "invalid graph document")
}

// location turns "document.Children[1].Kind" into "children[1].kind".
func location(ns string) string {
	ns = strings.TrimPrefix(ns, "document.")
	ns = strings.ReplaceAll(ns, "Children", "children")
	ns = strings.ReplaceAll(ns, "Kind", "kind")
	ns = strings.ReplaceAll(ns, "Description", "description")
	if !strings.Contains(ns, "[") {
		return "root." + ns
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "kind is required"
	case "nodekind":
		return fmt.Sprintf("unknown node kind %q", fe.Value())
	case "leafchildren":
		return "leaf nodes cannot have children"
	case "description":
		return fmt.Sprintf("description %q does not match %q", fe.Value(), fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

func description(k node.Kind) string {
	if n, err := node.NewLeaf(k); err == nil {
		return n.Describe()
	}
	return (&node.Graph{}).Describe()
}

// toNode builds the node tree. The document must have passed check.
func (d document) toNode() (node.Node, error) {
	k, err := node.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	if k.IsLeaf() {
		return node.NewLeaf(k)
	}

	g := node.NewGraph()
	for _, c := range d.Children {
		child, err := c.toNode()
		if err != nil {
			return nil, err
		}
		g.Append(child)
	}
	return g, nil
}

// fromNode serializes a validated, acyclic node tree.
func fromNode(n node.Node) document {
	d := document{Kind: n.Kind().String()}
	if g, ok := n.(*node.Graph); ok {
		for _, c := range g.Children() {
			d.Children = append(d.Children, fromNode(c))
		}
	}
	return d
}

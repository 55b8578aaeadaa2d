package commons

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOperation = errors.New("unknown operation")

type OperationKind int

const (
	Union OperationKind = iota + 1
	Intersection
	Difference
	SymmetricDifference
	Complement
	CartesianProduct
)

// Operations lists every kind in display order.
var Operations = []OperationKind{
	Union,
	Intersection,
	Difference,
	SymmetricDifference,
	Complement,
	CartesianProduct,
}

var operationNames = map[OperationKind]string{
	Union:               "union",
	Intersection:        "intersection",
	Difference:          "difference",
	SymmetricDifference: "symmetric",
	Complement:          "complement",
	CartesianProduct:    "cartesian",
}

var operationAliases = map[string]OperationKind{
	"union":                Union,
	"intersection":         Intersection,
	"intersect":            Intersection,
	"difference":           Difference,
	"diff":                 Difference,
	"symmetric":            SymmetricDifference,
	"symmetric-difference": SymmetricDifference,
	"symmetricdifference":  SymmetricDifference,
	"xor":                  SymmetricDifference,
	"complement":           Complement,
	"cartesian":            CartesianProduct,
	"cartesian-product":    CartesianProduct,
	"cartesianproduct":     CartesianProduct,
	"product":              CartesianProduct,
}

func ParseOperation(s string) (OperationKind, error) {
	if op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

func (op OperationKind) Valid() bool {
	_, ok := operationNames[op]
	return ok
}

func (op OperationKind) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// MinCollections is the smallest number of selected collections op accepts.
func (op OperationKind) MinCollections() int {
	switch op {
	case Complement:
		return 1
	case Union, Intersection, Difference, SymmetricDifference, CartesianProduct:
		return 2
	default:
		return 0
	}
}

// MaxCollections is the largest number of selected collections op accepts, -1 when unbounded.
func (op OperationKind) MaxCollections() int {
	switch op {
	case Complement:
		return 1
	case SymmetricDifference, CartesianProduct:
		return 2
	case Union, Intersection, Difference:
		return -1
	default:
		return 0
	}
}

func (op OperationKind) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, int(op))
	}
	return []byte(op.String()), nil
}

func (op *OperationKind) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

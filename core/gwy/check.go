package gwy

import (
	"fmt"

	"github.com/FocuswithJustin/gwyfile/core/errors"
	"github.com/FocuswithJustin/gwyfile/internal/validation"
)

// CheckFlags selects which severity categories the checker reports.
type CheckFlags uint

const (
	// CheckValidity reports format-breaking problems: names, type names and
	// string values that are not valid UTF-8, and non-finite doubles.
	CheckValidity CheckFlags = 1 << iota
	// CheckWarning reports legal but discouraged constructs: object type
	// names that are not bare identifiers and empty item names.
	CheckWarning

	// CheckAll enables every category.
	CheckAll = CheckValidity | CheckWarning
)

// checker carries the traversal state. Findings accumulate in list; with a
// nil list the traversal stops at the first finding.
type checker struct {
	flags CheckFlags
	list  *errors.List
	ok    bool
}

// Check audits the tree rooted at o without mutating it. It reports whether
// no selected problem was found. With a non-nil list every finding is
// appended, each carrying its escaped path from the root, and the traversal
// always completes; with a nil list it stops at the first finding.
//
// The traversal uses an explicit worklist, so adversarially deep trees
// cannot overflow the stack any more than they can during decoding.
func Check(o *Object, flags CheckFlags, list *errors.List) bool {
	c := &checker{flags: flags, list: list, ok: true}

	work := []*Object{o}
	for len(work) > 0 {
		obj := work[len(work)-1]
		work = work[:len(work)-1]
		if !c.checkObject(obj) {
			return false
		}
		for _, it := range obj.items {
			if !c.checkItem(it) {
				return false
			}
			switch it.typ {
			case TypeObject:
				work = append(work, it.objVal)
			case TypeObjectArray:
				work = append(work, it.objArr...)
			}
		}
	}
	return c.ok
}

// report records a finding. It returns false when traversal should stop.
func (c *checker) report(domain errors.Domain, code int, path, message string) bool {
	c.ok = false
	if c.list == nil {
		return false
	}
	c.list.Append(&errors.Finding{
		Domain:  domain,
		Code:    code,
		Path:    path,
		Message: message,
	})
	return true
}

func (c *checker) checkObject(o *Object) bool {
	if c.flags&CheckValidity != 0 && !validation.ValidUTF8(o.name) {
		if !c.report(errors.DomainValidity, int(errors.InvalidUTF8Type), ObjectPath(o),
			"object type name is not valid UTF-8") {
			return false
		}
	}
	if c.flags&CheckWarning != 0 && !validation.IsIdentifier(o.name) {
		if !c.report(errors.DomainWarning, int(errors.WarningTypeIdentifier), ObjectPath(o),
			fmt.Sprintf("object type name %q is not an identifier", o.name)) {
			return false
		}
	}
	return true
}

func (c *checker) checkItem(it *Item) bool {
	if c.flags&CheckValidity != 0 {
		if !validation.ValidUTF8(it.name) {
			if !c.report(errors.DomainValidity, int(errors.InvalidUTF8Name), ItemPath(it),
				"item name is not valid UTF-8") {
				return false
			}
		}
		switch it.typ {
		case TypeDouble:
			if !validation.FiniteDouble(it.doubleVal) {
				if !c.report(errors.DomainValidity, int(errors.InvalidDouble), ItemPath(it),
					"double value is not finite") {
					return false
				}
			}
		case TypeDoubleArray:
			if !validation.FiniteDoubles(it.doubleArr) {
				if !c.report(errors.DomainValidity, int(errors.InvalidDouble), ItemPath(it),
					"double array contains a non-finite value") {
					return false
				}
			}
		case TypeString:
			if !validation.ValidUTF8(it.strVal) {
				if !c.report(errors.DomainValidity, int(errors.InvalidUTF8String), ItemPath(it),
					"string value is not valid UTF-8") {
					return false
				}
			}
		case TypeStringArray:
			for i, s := range it.strArr {
				if !validation.ValidUTF8(s) {
					if !c.report(errors.DomainValidity, int(errors.InvalidUTF8String), ItemPath(it),
						fmt.Sprintf("string value %d is not valid UTF-8", i)) {
						return false
					}
				}
			}
		}
	}
	if c.flags&CheckWarning != 0 && it.name == "" {
		if !c.report(errors.DomainWarning, int(errors.WarningEmptyName), ItemPath(it),
			"item has an empty name") {
			return false
		}
	}
	return true
}

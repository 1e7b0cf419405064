// Package predfile loads predicate definitions from YAML files and CUE
// packages and compiles them into TQL fragments.
//
// A YAML file holds a list:
//
//	predicates:
//	  - name: adults
//	    op: GreaterThanOrEqual
//	    field: age
//	    value: 18
//
// A CUE package holds a struct keyed by name:
//
//	predicate: adults: {
//		op:    "GreaterThanOrEqual"
//		field: "age"
//		value: 18
//	}
//
// A value mapping with min and max keys (and optional min_open, max_open)
// becomes a range operand for Between.
package predfile

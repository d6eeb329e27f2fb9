package codegen

import (
	"strings"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
)

// SystemExpressions generates SystemExpressionsWrapper.cpp, which constructs
// and initializes the C++ expressions attached to fields and coefficients.
var SystemExpressions = &Artifact{
	Filename: "SystemExpressionsWrapper.cpp",
	Preamble: []string{"SystemExpressionsWrapper.h", "BoostTypes.h", "Logger.h", "<dolfin.h>"},
	Functions: []*Function{
		{
			ID:         FetchExpression,
			Name:       "cpp_fetch_expression",
			Comment:    "A function to return an expression for a coefficient from a system given a systemname and a functionname (and its size, shape and private members bucket, system and time.",
			Signature:  "Expression_ptr cpp_fetch_expression(const std::string &systemname, const std::string &functionname, const std::string &expressiontype, const std::string &expressionname, const std::size_t &size, const std::vector<std::size_t> &shape, const Bucket *bucket, const SystemBucket *system, const double_ptr time)",
			ResultType: "Expression_ptr",
			Result:     "expression",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:        InitExpression,
			Name:      "cpp_init_expression",
			Comment:   "A function to initialize an expression for a cpp expression given a systemname and a functionname (and a boost shared pointer to the expression to initialize.",
			Signature: "void cpp_init_expression(Expression_ptr expression, const std::string &systemname, const std::string &functionname, const std::string &expressiontype, const std::string &expressionname)",
			Result:    "expression",
			Key:       keySystem,
			KeyLabel:  labelSystem,
		},
	},
	Contributors: func(b *bucket.Bucket) []Contributor {
		out := make([]Contributor, 0, len(b.Systems))
		for _, sys := range b.Systems {
			out = append(out, expressionsSystem{sys})
		}
		return out
	},
}

type expressionsSystem struct{ sys *bucket.System }

func (s expressionsSystem) Key() string { return s.sys.Name }

func (s expressionsSystem) Includes() []string {
	var out []string
	for _, e := range s.sys.CppExpressions() {
		out = append(out, e.Header())
	}
	return out
}

func (s expressionsSystem) Fragment(fn *Function, _ int) []string {
	exprs := s.sys.CppExpressions()
	if len(exprs) == 0 {
		return nil
	}

	var leaf func(e *bucket.CppExpression) []string
	switch fn.ID {
	case FetchExpression:
		leaf = func(e *bucket.CppExpression) []string {
			return fn.Reset(e.ClassName() + "(size, shape, bucket, system, time)")
		}
	case InitExpression:
		leaf = func(e *bucket.CppExpression) []string {
			return []string{"(*boost::dynamic_pointer_cast< " + e.ClassName() + " >(expression)).init();"}
		}
	default:
		return nil
	}

	functions := groupBy(exprs, (*bucket.CppExpression).Function)
	return nested(fn, keyFunction, labelFunction, functions, firstOf((*bucket.CppExpression).Function), func(byFunction []*bucket.CppExpression) []string {
		types := groupBy(byFunction, func(e *bucket.CppExpression) string { return e.Type })
		return nested(fn, keyExprType, labelExprType, types, firstOf(func(e *bucket.CppExpression) string { return e.Type }), func(byType []*bucket.CppExpression) []string {
			return nested(fn, keyExprName, labelExprName, byType, func(e *bucket.CppExpression) string { return e.Name }, leaf)
		})
	})
}

// groupBy splits exprs into runs sharing the same key, ordered by the first
// appearance of each key.
func groupBy(exprs []*bucket.CppExpression, key func(*bucket.CppExpression) string) [][]*bucket.CppExpression {
	var groups [][]*bucket.CppExpression
	index := make(map[string]int)
	for _, e := range exprs {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], e)
	}
	return groups
}

func firstOf(key func(*bucket.CppExpression) string) func([]*bucket.CppExpression) string {
	return func(group []*bucket.CppExpression) string { return key(group[0]) }
}

// ExpressionHeader renders the C++ header declaring the class of e.
func ExpressionHeader(e *bucket.CppExpression) *Document {
	class := e.ClassName()
	guard := "__" + strings.ToUpper(class) + "_H"
	doc := NewDocument(e.Header())

	doc.Blank()
	doc.Append(0, "#ifndef "+guard, "#define "+guard)
	doc.Blank()
	for _, inc := range []string{"BoostTypes.h", "Bucket.h", "SystemBucket.h", "<dolfin.h>"} {
		doc.Append(0, include(inc))
	}
	doc.Blank()
	doc.Append(0, "namespace buckettools", "{")
	doc.Append(1, "class "+class+" : public dolfin::Expression", "{")
	doc.Append(1, "public:")
	doc.Append(2,
		class+"(const std::size_t &size, const std::vector<std::size_t> &shape, const Bucket *bucket, const SystemBucket *system, const double_ptr time)",
		"  : dolfin::Expression(shape), bucket_(bucket), system_(system), time_(time)",
		"{",
		"}",
	)
	doc.Blank()
	doc.Append(2, "void init()", "{")
	doc.Append(3, splitCode(e.Init)...)
	doc.Append(2, "}")
	doc.Blank()
	doc.Append(2, "void eval(dolfin::Array<double>& values, const dolfin::Array<double>& x, const ufc::cell &cell) const", "{")
	doc.Append(3, splitCode(e.Eval)...)
	doc.Append(2, "}")
	doc.Blank()
	doc.Append(1, "private:")
	doc.Append(2, "const Bucket *bucket_;", "const SystemBucket *system_;", "const double_ptr time_;")
	doc.Append(2, splitCode(e.Members)...)
	doc.Append(1, "};")
	doc.Append(0, "}")
	doc.Blank()
	doc.Append(0, "#endif")
	return doc
}

// splitCode splits user code into lines, dropping surrounding blank lines.
func splitCode(code string) []string {
	code = strings.Trim(code, "\n")
	if strings.TrimSpace(code) == "" {
		return nil
	}
	return strings.Split(code, "\n")
}

// Package lang implements the condition language used by archetype scripts
// in "if" and "unless" attributes.
//
// # Grammar
//
// Expressions compare variables and string literals and combine the results
// with boolean operators:
//
//	$name                 variable; letters, digits, '.', '-', '_'
//	"text"                literal; \" escapes a quote
//	a == b, a != b        value equality, or condition equivalence
//	a && b, a || b, a ^ b and, or, exclusive or (conditions only)
//	!( a )                negation (condition only)
//	( a )                 grouping
//
// There is no precedence table. Operators apply left to right as they are
// scanned, so
//
//	$a == "x" && $b == "y" || $c == "z"
//
// parses as ((a == x) && (b == y)) || (c == z). Use parentheses to group
// differently.
//
// Whether "==" and "!=" compare values or conditions is decided while
// parsing, from the left operand: comparing two conditions produces an
// [OpIs] or [OpIsNot] node, never [OpEqual] or [OpNotEqual].
//
// # Evaluation
//
// [Evaluate] walks the tree with a variable resolver. [Compile] lowers the
// tree to an expr-lang program for repeated evaluation.
//
//	expr, err := lang.Parse(ctx, `$flavor == "se" && $docker == "true"`)
//	if err != nil {
//		return err
//	}
//
//	v, err := lang.EvaluateMap(expr, map[string]string{
//		"flavor": "se",
//		"docker": "true",
//	})
package lang

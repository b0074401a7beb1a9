package expr

import (
	"fmt"
	"math"
)

func (n numberLit) eval(*environment) (value, error) { return number(n), nil }

func (n *nameRef) eval(env *environment) (value, error) {
	v, ok := env.lookup(n.name)
	if !ok {
		return nil, fmt.Errorf("name %q is not present in the expression scope", n.name)
	}
	return v, nil
}

func (n *attrRef) eval(env *environment) (value, error) {
	recv, err := n.recv.eval(env)
	if err != nil {
		return nil, err
	}
	ns, ok := recv.(*namespace)
	if !ok {
		return nil, fmt.Errorf("%s has no attributes to access", recv.describe())
	}
	v, ok := ns.entries[n.name]
	if !ok {
		return nil, fmt.Errorf("name %q is not present in the expression scope", dottedName(ns.name, n.name))
	}
	return v, nil
}

func (n *unaryOp) eval(env *environment) (value, error) {
	child, err := evalNumber(n.child, env)
	if err != nil {
		return nil, err
	}
	if n.op == tokMinus {
		return number(-child), nil
	}
	return number(child), nil
}

func (n *binaryOp) eval(env *environment) (value, error) {
	left, err := evalNumber(n.left, env)
	if err != nil {
		return nil, err
	}
	right, err := evalNumber(n.right, env)
	if err != nil {
		return nil, err
	}
	switch n.op {
	case tokPlus:
		return number(left + right), nil
	case tokMinus:
		return number(left - right), nil
	case tokStar:
		return number(left * right), nil
	case tokSlash:
		return number(left / right), nil
	case tokPercent:
		return number(flooredModFn(left, right)), nil
	case tokStarStar:
		return number(math.Pow(left, right)), nil
	}
	return nil, fmt.Errorf("unsupported operator")
}

func (n *call) eval(env *environment) (value, error) {
	callee, err := n.fn.eval(env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*function)
	if !ok {
		return nil, fmt.Errorf("%s is not callable", callee.describe())
	}
	if len(n.args) < fn.minArgs || len(n.args) > fn.maxArgs {
		return nil, fmt.Errorf("%s takes %s, got %d", fn.name, arityText(fn.minArgs, fn.maxArgs), len(n.args))
	}
	args := make([]float64, len(n.args))
	for i, argNode := range n.args {
		arg, err := evalNumber(argNode, env)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	res, err := fn.apply(args)
	if err != nil {
		return nil, err
	}
	return number(res), nil
}

// evalNumber evaluates a node and requires a numeric result, for operand and
// argument positions.
func evalNumber(n node, env *environment) (float64, error) {
	v, err := n.eval(env)
	if err != nil {
		return 0, err
	}
	num, ok := v.(number)
	if !ok {
		return 0, fmt.Errorf("%s cannot be used as a number", v.describe())
	}
	return float64(num), nil
}

func arityText(min, max int) string {
	if min == max {
		if min == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", min)
	}
	return fmt.Sprintf("%d to %d arguments", min, max)
}

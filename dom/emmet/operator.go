package emmet

// op is an operator of the abbreviation grammar. Literal terms carry op 0.
type op rune

const (
	opNone       op = 0
	opGroupOpen  op = '('
	opGroupClose op = ')'
	opClimbUp    op = '^'
	opChild      op = '>'
	opSibling    op = '+'
	opRepeat     op = '*'
	opText       op = '`'
	opAttrClose  op = ']'
	opAttrOpen   op = '['
	opClass      op = '.'
	opID         op = '#'
)

// Operator priorities for precedence climbing. Higher binds tighter.
var priorities = map[op]int{
	opGroupOpen:  1,
	opGroupClose: 2,
	opClimbUp:    3,
	opChild:      4,
	opSibling:    4,
	opRepeat:     5,
	opText:       6,
	opAttrClose:  5,
	opAttrOpen:   6,
	opClass:      7,
	opID:         8,
}

func (o op) priority() int {
	return priorities[o]
}

func (o op) String() string {
	if o == opNone {
		return "term"
	}
	return string(rune(o))
}

// token is an element of the RPN output: either an operator or a literal term.
type token struct {
	op   op
	term string
}

func (t token) isOperator() bool {
	return t.op != opNone
}

func (t token) String() string {
	if t.isOperator() {
		return t.op.String()
	}
	return "'" + t.term + "'"
}

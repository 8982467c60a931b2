package emmet

import "strings"

// opstack is the operator stack of the shunting-yard scanner. The top of the
// stack is the last element.
type opstack []op

func (s opstack) top() op {
	if len(s) == 0 {
		return opNone
	}
	return s[len(s)-1]
}

func (s *opstack) push(o op) {
	*s = append(*s, o)
}

func (s *opstack) pop() op {
	if len(*s) == 0 {
		return opNone
	}
	o := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return o
}

// toRPN scans an abbreviation and returns its tokens in reverse polish notation.
//
// Text spans (`…`) and attribute spans ([…]) switch the scanner into a skip
// mode, where every character up to the closing delimiter is part of the term.
func toRPN(abbr string) []token {
	var (
		stack  opstack
		output []token
		term   strings.Builder
		skip   op // closing delimiter of an active text or attribute span
	)
	for _, r := range abbr {
		// concat .c1.c2 into a single space separated class list
		if r == '.' && stack.top() == opClass {
			r = ' '
		}
		o := op(r)
		prio, isOp := priorities[o]
		if !isOp || (skip != opNone && o != skip) {
			term.WriteRune(r)
			continue
		}
		// only one level of ^ is ever materialized in a row
		if o == opClimbUp && stack.top() == opClimbUp {
			stack.pop()
		}
		if term.Len() > 0 {
			output = append(output, token{term: term.String()})
			term.Reset()
		} else if o == skip {
			if o == opText {
				output = append(output, token{}) // `` is an empty text
			} else {
				stack.pop() // [] is dropped
			}
		}
		if o != opGroupOpen {
			for stack.top().priority() > prio {
				emitted := stack.pop()
				output = append(output, token{op: emitted})
				// ^ must not climb out of more than the nearest parent
				if o == opClimbUp && emitted == opChild {
					break
				}
			}
		}
		switch {
		case o == opGroupClose:
			stack.pop() // drop the matching '('
		case skip == opNone:
			stack.push(o)
			if o == opAttrOpen {
				skip = opAttrClose
			} else if o == opText {
				skip = opText
			}
		default:
			skip = opNone
		}
	}
	if term.Len() > 0 {
		output = append(output, token{term: term.String()})
	}
	for i := len(stack) - 1; i >= 0; i-- {
		output = append(output, token{op: stack[i]})
	}
	return output
}

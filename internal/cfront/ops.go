package cfront

// Opcodes emitted for statements and operators. Builtin and method calls
// are emitted under their source name.
const (
	OpFunc      = "func"
	OpRet       = "ret"
	OpCall      = "call"
	OpIf        = "if"
	OpElse      = "else"
	OpEndIf     = "endif"
	OpLoop      = "loop"
	OpEndLoop   = "endloop"
	OpBreak     = "break"
	OpBreakC    = "breakc"
	OpContinue  = "continue"
	OpSwitch    = "switch"
	OpCase      = "case"
	OpDefault   = "default"
	OpEndSwitch = "endswitch"
	OpDiscard   = "discard"

	OpAssign    = "assign"
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpDiv       = "div"
	OpRem       = "rem"
	OpNegate    = "negate"
	OpBitNot    = "bitnot"
	OpLogNot    = "lognot"
	OpBitAnd    = "bitand"
	OpBitOr     = "bitor"
	OpBitXor    = "bitxor"
	OpShl       = "shl"
	OpShr       = "shr"
	OpLogAnd    = "logand"
	OpLogOr     = "logor"
	OpEq        = "eq"
	OpNe        = "ne"
	OpLt        = "lt"
	OpLe        = "le"
	OpGt        = "gt"
	OpGe        = "ge"
	OpCond      = "cond"
	OpConstruct = "construct"
	OpAccess    = "access"
	OpStore     = "store"
)

// CoreOps lists every statement and operator opcode.
var CoreOps = []string{
	OpFunc, OpRet, OpCall, OpIf, OpElse, OpEndIf, OpLoop, OpEndLoop,
	OpBreak, OpBreakC, OpContinue, OpSwitch, OpCase, OpDefault, OpEndSwitch,
	OpDiscard, OpAssign, OpAdd, OpSub, OpMul, OpDiv, OpRem, OpNegate,
	OpBitNot, OpLogNot, OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr, OpLogAnd,
	OpLogOr, OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpCond, OpConstruct,
	OpAccess, OpStore,
}

var binaryOps = map[TokenKind]string{
	TokenPlus:           OpAdd,
	TokenMinus:          OpSub,
	TokenStar:           OpMul,
	TokenSlash:          OpDiv,
	TokenPercent:        OpRem,
	TokenAmpersand:      OpBitAnd,
	TokenPipe:           OpBitOr,
	TokenCaret:          OpBitXor,
	TokenLessLess:       OpShl,
	TokenGreaterGreater: OpShr,
	TokenAmpAmp:         OpLogAnd,
	TokenPipePipe:       OpLogOr,
	TokenEqualEqual:     OpEq,
	TokenBangEqual:      OpNe,
	TokenLess:           OpLt,
	TokenLessEqual:      OpLe,
	TokenGreater:        OpGt,
	TokenGreaterEqual:   OpGe,
}

var compoundOps = map[TokenKind]string{
	TokenPlusEqual:           OpAdd,
	TokenMinusEqual:          OpSub,
	TokenStarEqual:           OpMul,
	TokenSlashEqual:          OpDiv,
	TokenPercentEqual:        OpRem,
	TokenAmpEqual:            OpBitAnd,
	TokenPipeEqual:           OpBitOr,
	TokenCaretEqual:          OpBitXor,
	TokenLessLessEqual:       OpShl,
	TokenGreaterGreaterEqual: OpShr,
}

// precedence lists binary operator levels from loosest to tightest.
var precedence = [][]TokenKind{
	{TokenPipePipe},
	{TokenAmpAmp},
	{TokenPipe},
	{TokenCaret},
	{TokenAmpersand},
	{TokenEqualEqual, TokenBangEqual},
	{TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual},
	{TokenLessLess, TokenGreaterGreater},
	{TokenPlus, TokenMinus},
	{TokenStar, TokenSlash, TokenPercent},
}

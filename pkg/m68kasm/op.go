package m68kasm

import "fmt"

// An Op is a 680x0 instruction mnemonic.
//
// Conditional families (Bcc, DBcc, Scc, TRAPcc and their FPU counterparts)
// share a single Op; the tested condition travels in Inst.Extra.
type Op uint16

const (
	_ Op = iota
	ABCD
	ADD
	ADDA
	ADDI
	ADDQ
	ADDX
	AND
	ANDI
	ANDITOCCR
	ANDITOSR
	ASL
	ASR
	BCC
	BCHG
	BCLR
	BFCHG
	BFCLR
	BFEXTS
	BFEXTU
	BFFFO
	BFINS
	BFSET
	BFTST
	BKPT
	BRA
	BSET
	BSR
	BTST
	CALLM
	CAS
	CHK
	CHK2
	CLR
	CMP
	CMP2
	CMPA
	CMPI
	CMPM
	DBCC
	DIVS
	DIVSL
	DIVU
	DIVUL
	EOR
	EORI
	EORITOCCR
	EORITOSR
	EXG
	EXT
	EXTB
	FABS
	FACOS
	FADD
	FASIN
	FATAN
	FATANH
	FBCC
	FCMP
	FCOS
	FCOSH
	FDABS
	FDADD
	FDBCC
	FDDIV
	FDIV
	FDMOVE
	FDMUL
	FDNEG
	FDSQRT
	FDSUB
	FETOX
	FETOXM1
	FGETEXP
	FGETMAN
	FINT
	FINTRZ
	FLOG10
	FLOG2
	FLOGN
	FLOGNP1
	FMOD
	FMOVE
	FMOVECR
	FMOVEM
	FMUL
	FNEG
	FNOP
	FREM
	FRESTORE
	FSABS
	FSADD
	FSAVE
	FSCALE
	FSCC
	FSDIV
	FSGLDIV
	FSGLMUL
	FSIN
	FSINCOS
	FSINH
	FSMOVE
	FSMUL
	FSNEG
	FSQRT
	FSSQRT
	FSSUB
	FSUB
	FTAN
	FTANH
	FTENTOX
	FTRAPCC
	FTST
	FTWOTOX
	ILLEGAL
	JMP
	JSR
	LEA
	LINK
	LSL
	LSR
	MOVE
	MOVE16
	MOVEA
	MOVEC
	MOVEFROMCCR
	MOVEFROMSR
	MOVEFROMUSP
	MOVEM
	MOVEP
	MOVEQ
	MOVES
	MOVETOCCR
	MOVETOSR
	MOVETOUSP
	MULS
	MULU
	NBCD
	NEG
	NEGX
	NOP
	NOT
	OR
	ORI
	ORITOCCR
	ORITOSR
	PACK
	PEA
	RESET
	ROL
	ROR
	ROXL
	ROXR
	RTD
	RTE
	RTM
	RTR
	RTS
	SBCD
	SCC
	STOP
	SUB
	SUBA
	SUBI
	SUBQ
	SUBX
	SWAP
	TAS
	TRAP
	TRAPCC
	TRAPV
	TST
	UNLK
	UNPK
	opCount
)

var opstr = [...]string{
	ABCD:        "abcd",
	ADD:         "add",
	ADDA:        "adda",
	ADDI:        "addi",
	ADDQ:        "addq",
	ADDX:        "addx",
	AND:         "and",
	ANDI:        "andi",
	ANDITOCCR:   "andi_to_ccr",
	ANDITOSR:    "andi_to_sr",
	ASL:         "asl",
	ASR:         "asr",
	BCC:         "bcc",
	BCHG:        "bchg",
	BCLR:        "bclr",
	BFCHG:       "bfchg",
	BFCLR:       "bfclr",
	BFEXTS:      "bfexts",
	BFEXTU:      "bfextu",
	BFFFO:       "bfffo",
	BFINS:       "bfins",
	BFSET:       "bfset",
	BFTST:       "bftst",
	BKPT:        "bkpt",
	BRA:         "bra",
	BSET:        "bset",
	BSR:         "bsr",
	BTST:        "btst",
	CALLM:       "callm",
	CAS:         "cas",
	CHK:         "chk",
	CHK2:        "chk2",
	CLR:         "clr",
	CMP:         "cmp",
	CMP2:        "cmp2",
	CMPA:        "cmpa",
	CMPI:        "cmpi",
	CMPM:        "cmpm",
	DBCC:        "dbcc",
	DIVS:        "divs",
	DIVSL:       "divsl",
	DIVU:        "divu",
	DIVUL:       "divul",
	EOR:         "eor",
	EORI:        "eori",
	EORITOCCR:   "eori_to_ccr",
	EORITOSR:    "eori_to_sr",
	EXG:         "exg",
	EXT:         "ext",
	EXTB:        "extb",
	FABS:        "fabs",
	FACOS:       "facos",
	FADD:        "fadd",
	FASIN:       "fasin",
	FATAN:       "fatan",
	FATANH:      "fatanh",
	FBCC:        "fbcc",
	FCMP:        "fcmp",
	FCOS:        "fcos",
	FCOSH:       "fcosh",
	FDABS:       "fdabs",
	FDADD:       "fdadd",
	FDBCC:       "fdbcc",
	FDDIV:       "fddiv",
	FDIV:        "fdiv",
	FDMOVE:      "fdmove",
	FDMUL:       "fdmul",
	FDNEG:       "fdneg",
	FDSQRT:      "fdsqrt",
	FDSUB:       "fdsub",
	FETOX:       "fetox",
	FETOXM1:     "fetoxm1",
	FGETEXP:     "fgetexp",
	FGETMAN:     "fgetman",
	FINT:        "fint",
	FINTRZ:      "fintrz",
	FLOG10:      "flog10",
	FLOG2:       "flog2",
	FLOGN:       "flogn",
	FLOGNP1:     "flognp1",
	FMOD:        "fmod",
	FMOVE:       "fmove",
	FMOVECR:     "fmovecr",
	FMOVEM:      "fmovem",
	FMUL:        "fmul",
	FNEG:        "fneg",
	FNOP:        "fnop",
	FREM:        "frem",
	FRESTORE:    "frestore",
	FSABS:       "fsabs",
	FSADD:       "fsadd",
	FSAVE:       "fsave",
	FSCALE:      "fscale",
	FSCC:        "fscc",
	FSDIV:       "fsdiv",
	FSGLDIV:     "fsgldiv",
	FSGLMUL:     "fsglmul",
	FSIN:        "fsin",
	FSINCOS:     "fsincos",
	FSINH:       "fsinh",
	FSMOVE:      "fsmove",
	FSMUL:       "fsmul",
	FSNEG:       "fsneg",
	FSQRT:       "fsqrt",
	FSSQRT:      "fssqrt",
	FSSUB:       "fssub",
	FSUB:        "fsub",
	FTAN:        "ftan",
	FTANH:       "ftanh",
	FTENTOX:     "ftentox",
	FTRAPCC:     "ftrapcc",
	FTST:        "ftst",
	FTWOTOX:     "ftwotox",
	ILLEGAL:     "illegal",
	JMP:         "jmp",
	JSR:         "jsr",
	LEA:         "lea",
	LINK:        "link",
	LSL:         "lsl",
	LSR:         "lsr",
	MOVE:        "move",
	MOVE16:      "move16",
	MOVEA:       "movea",
	MOVEC:       "movec",
	MOVEFROMCCR: "move_from_ccr",
	MOVEFROMSR:  "move_from_sr",
	MOVEFROMUSP: "move_from_usp",
	MOVEM:       "movem",
	MOVEP:       "movep",
	MOVEQ:       "moveq",
	MOVES:       "moves",
	MOVETOCCR:   "move_to_ccr",
	MOVETOSR:    "move_to_sr",
	MOVETOUSP:   "move_to_usp",
	MULS:        "muls",
	MULU:        "mulu",
	NBCD:        "nbcd",
	NEG:         "neg",
	NEGX:        "negx",
	NOP:         "nop",
	NOT:         "not",
	OR:          "or",
	ORI:         "ori",
	ORITOCCR:    "ori_to_ccr",
	ORITOSR:     "ori_to_sr",
	PACK:        "pack",
	PEA:         "pea",
	RESET:       "reset",
	ROL:         "rol",
	ROR:         "ror",
	ROXL:        "roxl",
	ROXR:        "roxr",
	RTD:         "rtd",
	RTE:         "rte",
	RTM:         "rtm",
	RTR:         "rtr",
	RTS:         "rts",
	SBCD:        "sbcd",
	SCC:         "scc",
	STOP:        "stop",
	SUB:         "sub",
	SUBA:        "suba",
	SUBI:        "subi",
	SUBQ:        "subq",
	SUBX:        "subx",
	SWAP:        "swap",
	TAS:         "tas",
	TRAP:        "trap",
	TRAPCC:      "trapcc",
	TRAPV:       "trapv",
	TST:         "tst",
	UNLK:        "unlk",
	UNPK:        "unpk",
}

func (op Op) String() string {
	if op >= Op(len(opstr)) || opstr[op] == "" {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opstr[op]
}

// Ops returns every known Op in declaration order.
func Ops() []Op {
	r := make([]Op, 0, int(opCount)-1)
	for op := Op(1); op < opCount; op++ {
		r = append(r, op)
	}
	return r
}

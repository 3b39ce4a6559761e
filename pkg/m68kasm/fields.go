package m68kasm

import "math/bits"

// A Condition is a CPU condition code tested by Bcc, DBcc, Scc and TRAPcc.
type Condition uint8

const (
	CondT  Condition = iota // true
	CondF                   // false
	CondHI                  // high
	CondLS                  // low or same
	CondCC                  // carry clear
	CondCS                  // carry set
	CondNE                  // not equal
	CondEQ                  // equal
	CondVC                  // overflow clear
	CondVS                  // overflow set
	CondPL                  // plus
	CondMI                  // minus
	CondGE                  // greater or equal
	CondLT                  // less than
	CondGT                  // greater than
	CondLE                  // less or equal
)

var condstr = [16]string{
	"t", "f", "hi", "ls", "cc", "cs", "ne", "eq",
	"vc", "vs", "pl", "mi", "ge", "lt", "gt", "le",
}

func (c Condition) String() string {
	return condstr[c&0xf]
}

// An FPCondition is a floating point conditional predicate tested by FBcc,
// FDBcc, FScc and FTRAPcc.
type FPCondition uint8

const (
	FPCondF    FPCondition = iota // false
	FPCondEQ                      // equal
	FPCondOGT                     // ordered greater than
	FPCondOGE                     // ordered greater or equal
	FPCondOLT                     // ordered less than
	FPCondOLE                     // ordered less or equal
	FPCondOGL                     // ordered greater or less than
	FPCondOR                      // ordered
	FPCondUN                      // unordered
	FPCondUEQ                     // unordered or equal
	FPCondUGT                     // unordered or greater than
	FPCondUGE                     // unordered or greater or equal
	FPCondULT                     // unordered or less than
	FPCondULE                     // unordered or less or equal
	FPCondNE                      // not equal
	FPCondT                       // true
	FPCondSF                      // signaling false
	FPCondSEQ                     // signaling equal
	FPCondGT                      // greater than
	FPCondGE                      // greater or equal
	FPCondLT                      // less than
	FPCondLE                      // less or equal
	FPCondGL                      // greater or less than
	FPCondGLE                     // greater, less or equal
	FPCondNGLE                    // not greater, less or equal
	FPCondNGL                     // not greater or less than
	FPCondNLE                     // not less or equal
	FPCondNLT                     // not less than
	FPCondNGE                     // not greater or equal
	FPCondNGT                     // not greater than
	FPCondSNE                     // signaling not equal
	FPCondST                      // signaling true
)

var fpcondstr = [32]string{
	"f", "eq", "ogt", "oge", "olt", "ole", "ogl", "or",
	"un", "ueq", "ugt", "uge", "ult", "ule", "ne", "t",
	"sf", "seq", "gt", "ge", "lt", "le", "gl", "gle",
	"ngle", "ngl", "nle", "nlt", "nge", "ngt", "sne", "st",
}

func (c FPCondition) String() string {
	return fpcondstr[c&0x1f]
}

// cc decodes the 4-bit condition field.
func cc(x uint16) Condition {
	return Condition(x & 0xf)
}

// fpcc decodes the low five bits of a 6-bit FPU predicate field. Bit 5 is
// reserved and checked by the caller.
func fpcc(x uint16) FPCondition {
	return FPCondition(x & 0x1f)
}

// bitfieldData decodes a bitfield offset or width from its dynamic flag and
// 5-bit value field. A static value of 0 means 32.
func bitfieldData(dynamic bool, v uint16) BitfieldData {
	if dynamic {
		return BitfieldDynamic(v & 7)
	}
	if v&0x1f == 0 {
		return BitfieldStatic(32)
	}
	return BitfieldStatic(v & 0x1f)
}

// bitfieldSpec decodes the {offset:width} extension word of a BFxxx
// instruction.
func bitfieldSpec(ext uint16) Bitfield {
	return Bitfield{
		Offset: bitfieldData(ext&0x0800 != 0, (ext>>6)&0x1f),
		Width:  bitfieldData(ext&0x0020 != 0, ext&0x1f),
	}
}

// fpFormat decodes the 3-bit source/destination specifier of an FPU
// general instruction. k is the low seven bits of the command word, only
// meaningful for the packed formats of FMOVE to memory.
func fpFormat(spec, k uint16) FPFormat {
	switch spec & 7 {
	case 0:
		return FPLong{}
	case 1:
		return FPSingle{}
	case 2:
		return FPExtended{}
	case 3:
		// static k-factor, sign-extended from 7 bits
		return FPPackedStatic{K: int8(uint8(k<<1)) >> 1}
	case 4:
		return FPWord{}
	case 5:
		return FPDouble{}
	case 6:
		return FPByte{}
	default:
		return FPPackedDynamic{K: DataReg((k >> 4) & 7)}
	}
}

// quick decodes the 3-bit data field of ADDQ, SUBQ and shift counts.
func quick(x uint16) uint8 {
	if x&7 == 0 {
		return 8
	}
	return uint8(x & 7)
}

// movemList normalises a MOVEM mask so that bit n is register n of
// D0-D7,A0-A7. Pre-decrement masks are stored A7..D0.
func movemList(mask uint16, predec bool) RegList {
	if predec {
		return RegList(bits.Reverse16(mask))
	}
	return RegList(mask)
}

// fmovemList normalises a static FMOVEM mask so that bit n is FPn.
// Post-increment and control mode masks are stored FP0 in bit 7.
func fmovemList(mask uint8, predec bool) RegList {
	if predec {
		return RegList(mask)
	}
	return RegList(bits.Reverse8(mask))
}

// sizeField decodes the common 2-bit size field. 3 is not a size.
func sizeField(x uint16) int {
	switch x & 3 {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	}
	return 0
}

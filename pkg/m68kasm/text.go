package m68kasm

import (
	"fmt"
	"strings"
)

// A SymLookup resolves an address to a symbol name and the address the
// symbol starts at. It returns "" when the address has no symbol.
type SymLookup func(uint64) (string, uint64)

// String returns the instruction in Motorola syntax. Branch targets are
// written relative to the start of the instruction.
func (i Inst) String() string {
	return motorolaSyntax(i, 0, false, nil)
}

// MotorolaSyntax returns the Motorola assembler syntax for the instruction
// located at pc. Branch targets are resolved against pc and, when symname
// is not nil, printed as symbols.
func MotorolaSyntax(inst Inst, pc uint64, symname SymLookup) string {
	return motorolaSyntax(inst, pc, true, symname)
}

func motorolaSyntax(inst Inst, pc uint64, havePC bool, symname SymLookup) string {
	var args []string
	for n, arg := range inst.Args {
		if arg == nil {
			break
		}
		s := operandString(inst, arg, pc, havePC, symname)
		if bf, ok := inst.Extra.(Bitfield); ok && n == bitfieldArg(inst.Op) {
			s += "{" + bitfieldDataString(bf.Offset) + ":" + bitfieldDataString(bf.Width) + "}"
		}
		if ff, ok := inst.Extra.(FloatFormat); ok && n == 1 && inst.Op == FMOVE {
			switch k := ff.Format.(type) {
			case FPPackedStatic:
				s += fmt.Sprintf("{#%d}", k.K)
			case FPPackedDynamic:
				s += "{" + DataReg(k.K).String() + "}"
			}
		}
		args = append(args, s)
	}
	if adj, ok := inst.Extra.(PackAdjust); ok {
		args = append(args, fmt.Sprintf("#$%x", uint16(adj)))
	}

	mn := mnemonic(inst) + sizeSuffix(inst)
	if len(args) == 0 {
		return mn
	}
	return mn + " " + strings.Join(args, ",")
}

// mnemonic spells out conditional families with their condition and folds
// the CCR, SR and USP variants back into their base instruction.
func mnemonic(inst Inst) string {
	switch inst.Op {
	case BCC, DBCC, SCC, TRAPCC:
		cond, _ := inst.Extra.(Condition)
		return strings.TrimSuffix(inst.Op.String(), "cc") + cond.String()
	case FBCC, FDBCC, FSCC, FTRAPCC:
		cond, _ := inst.Extra.(FPCondition)
		return strings.TrimSuffix(inst.Op.String(), "cc") + cond.String()
	case MOVETOCCR, MOVEFROMCCR, MOVETOSR, MOVEFROMSR, MOVETOUSP, MOVEFROMUSP:
		return "move"
	case ORITOCCR, ORITOSR:
		return "ori"
	case ANDITOCCR, ANDITOSR:
		return "andi"
	case EORITOCCR, EORITOSR:
		return "eori"
	}
	return inst.Op.String()
}

func sizeSuffix(inst Inst) string {
	if ff, ok := inst.Extra.(FloatFormat); ok {
		switch ff.Format.(type) {
		case FPLong:
			return ".l"
		case FPSingle:
			return ".s"
		case FPExtended:
			return ".x"
		case FPWord:
			return ".w"
		case FPDouble:
			return ".d"
		case FPByte:
			return ".b"
		case FPPackedStatic, FPPackedDynamic:
			return ".p"
		}
	}
	switch inst.Op {
	case BRA, BSR, BCC:
		if inst.Size == 1 {
			return ".s"
		}
	case LEA, PEA, EXG, SWAP, STOP, MOVEC, MOVEQ, DBCC, FDBCC, MOVETOUSP, MOVEFROMUSP, FSAVE, FRESTORE:
		return ""
	}
	switch inst.Size {
	case 1:
		return ".b"
	case 2:
		return ".w"
	case 4:
		return ".l"
	case 10:
		return ".x"
	}
	return ""
}

// bitfieldArg is the operand slot the {offset:width} specifier follows.
func bitfieldArg(op Op) int {
	if op == BFINS {
		return 1
	}
	return 0
}

func bitfieldDataString(d BitfieldData) string {
	switch d := d.(type) {
	case BitfieldStatic:
		return fmt.Sprint(uint8(d))
	case BitfieldDynamic:
		return DataReg(d).String()
	}
	return "?"
}

func operandString(inst Inst, arg Operand, pc uint64, havePC bool, symname SymLookup) string {
	switch a := arg.(type) {
	case Implied:
		return impliedName(inst.Op)
	case Imm8:
		return fmt.Sprintf("#$%x", uint8(a))
	case Imm16:
		return fmt.Sprintf("#$%x", uint16(a))
	case Imm32:
		return fmt.Sprintf("#$%x", uint32(a))
	case Abs16:
		return fmt.Sprintf("($%x).w", uint16(a))
	case Abs32:
		return fmt.Sprintf("($%x).l", uint32(a))
	case DataReg:
		return a.String()
	case AddrReg:
		return a.String()
	case FPReg:
		return a.String()
	case ARIndirect:
		return "(" + a.Reg.String() + ")"
	case ARPostInc:
		return "(" + a.Reg.String() + ")+"
	case ARPreDec:
		return "-(" + a.Reg.String() + ")"
	case ARDisp:
		return displacementString(a.Disp, a.Reg.String())
	case PCDisp:
		if isBranch(inst.Op) {
			return branchTarget(a, pc, havePC, symname)
		}
		return displacementString(a.Disp, "pc")
	case Disp:
		return displacementString(a.Disp, "")
	case DataRegPair:
		return a.First.String() + ":" + a.Second.String()
	case FPRegPair:
		return a.First.String() + ":" + a.Second.String()
	case RegList:
		switch {
		case inst.Op == MOVEM:
			return movemString(a)
		case inst.Size == 10:
			return listString(uint16(a), 8, func(n int) string { return FPReg(n).String() })
		default:
			return fpControlString(a)
		}
	case ControlReg:
		return a.String()
	}
	return "?"
}

func impliedName(op Op) string {
	switch op {
	case ORITOCCR, ANDITOCCR, EORITOCCR, MOVETOCCR, MOVEFROMCCR:
		return "ccr"
	case ORITOSR, ANDITOSR, EORITOSR, MOVETOSR, MOVEFROMSR:
		return "sr"
	case MOVETOUSP, MOVEFROMUSP:
		return "usp"
	}
	return "?"
}

func isBranch(op Op) bool {
	switch op {
	case BRA, BSR, BCC, DBCC, FBCC, FDBCC:
		return true
	}
	return false
}

func branchTarget(a PCDisp, pc uint64, havePC bool, symname SymLookup) string {
	rel := int64(a.Offset) + int64(a.Disp.Base)
	if !havePC {
		if rel < 0 {
			return fmt.Sprintf("*-%d", -rel)
		}
		return fmt.Sprintf("*+%d", rel)
	}
	target := uint64(int64(pc) + rel)
	if symname != nil {
		if s, base := symname(target); s != "" {
			if target == base {
				return s
			}
			return fmt.Sprintf("%s+%d", s, target-base)
		}
	}
	return fmt.Sprintf("$%x", target)
}

// displacementString formats a 68020 addressing mode. base is empty when
// the base register was suppressed.
func displacementString(d Displacement, base string) string {
	index := ""
	if d.Indexer != nil {
		index = indexString(d.Indexer)
	}
	if d.Indirection == NoIndirection {
		if d.Indexer == nil && base != "" {
			return fmt.Sprintf("(%d,%s)", d.Base, base)
		}
		return "(" + joinNonEmpty(fmt.Sprint(d.Base), base, index) + ")"
	}
	inner := joinNonEmpty(fmt.Sprint(d.Base), base)
	switch d.Indirection {
	case IndirectPreIndexed:
		inner = joinNonEmpty(fmt.Sprint(d.Base), base, index)
		index = ""
	case Indirect:
		index = ""
	}
	return "(" + joinNonEmpty("["+inner+"]", index, fmt.Sprint(d.Outer)) + ")"
}

func joinNonEmpty(parts ...string) string {
	var r []string
	for _, p := range parts {
		if p != "" {
			r = append(r, p)
		}
	}
	return strings.Join(r, ",")
}

func indexString(x Indexer) string {
	var reg string
	var scale uint8
	var long bool
	switch x := x.(type) {
	case DataIndex:
		reg, scale, long = x.Reg.String(), x.Scale, x.Long
	case AddrIndex:
		reg, scale, long = x.Reg.String(), x.Scale, x.Long
	}
	s := reg + ".w"
	if long {
		s = reg + ".l"
	}
	if scale != 0 {
		s += fmt.Sprintf("*%d", 1<<scale)
	}
	return s
}

// movemString writes a MOVEM mask as ranges, d0-d3/a5-a6.
func movemString(l RegList) string {
	d := listString(uint16(l)&0xff, 8, func(n int) string { return DataReg(n).String() })
	a := listString(uint16(l)>>8, 8, func(n int) string { return AddrReg(n).String() })
	return joinList(d, a)
}

func listString(mask uint16, n int, name func(int) string) string {
	var parts []string
	for i := 0; i < n; {
		if mask&(1<<uint(i)) == 0 {
			i++
			continue
		}
		j := i
		for j+1 < n && mask&(1<<uint(j+1)) != 0 {
			j++
		}
		if i == j {
			parts = append(parts, name(i))
		} else {
			parts = append(parts, name(i)+"-"+name(j))
		}
		i = j + 1
	}
	return strings.Join(parts, "/")
}

func joinList(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "/" + b
}

func fpControlString(l RegList) string {
	var parts []string
	if l&4 != 0 {
		parts = append(parts, "fpcr")
	}
	if l&2 != 0 {
		parts = append(parts, "fpsr")
	}
	if l&1 != 0 {
		parts = append(parts, "fpiar")
	}
	return strings.Join(parts, "/")
}

func (r DataReg) String() string {
	return fmt.Sprintf("d%d", uint8(r)&7)
}

func (r AddrReg) String() string {
	if r&7 == 7 {
		return "sp"
	}
	return fmt.Sprintf("a%d", uint8(r)&7)
}

func (r FPReg) String() string {
	return fmt.Sprintf("fp%d", uint8(r)&7)
}

var controlRegs = map[ControlReg]string{
	0x000: "sfc",
	0x001: "dfc",
	0x002: "cacr",
	0x003: "tc",
	0x004: "itt0",
	0x005: "itt1",
	0x006: "dtt0",
	0x007: "dtt1",
	0x800: "usp",
	0x801: "vbr",
	0x802: "caar",
	0x803: "msp",
	0x804: "isp",
	0x805: "mmusr",
	0x806: "urp",
	0x807: "srp",
}

func (r ControlReg) String() string {
	if s, ok := controlRegs[r]; ok {
		return s
	}
	return fmt.Sprintf("$%03x", uint16(r))
}

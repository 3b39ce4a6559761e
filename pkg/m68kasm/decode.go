package m68kasm

// A decodeFunc builds the instruction for a matched form. w is the first
// instruction word, already consumed; extension words are pulled from c.
type decodeFunc func(c *cursor, f *instFormat, w uint16) Inst

// An instFormat describes one instruction encoding.
type instFormat struct {
	mask  uint16
	value uint16
	// mask2 and value2 guard on the word following the opcode. A zero
	// mask2 means no guard. A guarded form is skipped when that word is
	// missing, and the decode fails with OutOfSpace if no later form
	// matches.
	mask2  uint16
	value2 uint16
	op     Op
	size   int
	decode decodeFunc
}

// matches reports whether w and the following word select f. short is set
// when w matches the first word but the guard word is missing.
func (f *instFormat) matches(c *cursor, w uint16) (ok, short bool) {
	if w&f.mask != f.value {
		return false, false
	}
	if f.mask2 == 0 {
		return true, false
	}
	if !c.hasWords(1) {
		return false, true
	}
	return c.peekWord(0)&f.mask2 == f.value2, false
}

// Decode decodes the instruction at the start of src. Forms are tried in
// table order within the group selected by the top four bits of the first
// word; the first match is final.
func Decode(src []byte) (DecodedInst, error) {
	c := newCursor(src)
	if !c.hasWords(1) {
		return DecodedInst{}, &Error{Kind: OutOfSpace}
	}
	w := c.pull16()

	group := groups[w>>12]
	truncated := false
	for i := range group {
		f := &group[i]
		ok, short := f.matches(c, w)
		if short {
			truncated = true
		}
		if !ok {
			continue
		}
		inst := f.decode(c, f, w)
		if c.err != noError {
			return DecodedInst{}, &Error{Kind: c.err, Opcode: w, Pos: c.errPos}
		}
		return DecodedInst{BytesUsed: uint32(c.pos), Inst: inst}, nil
	}
	if truncated {
		return DecodedInst{}, &Error{Kind: OutOfSpace, Opcode: w, Pos: c.pos}
	}
	return DecodedInst{}, &Error{Kind: NotImplemented, Opcode: w}
}

func reg9(w uint16) uint16 {
	return (w >> 9) & 7
}

// eaLow resolves the effective address in the low six bits of w.
func (c *cursor) eaLow(w uint16, size int) Operand {
	return c.ea(w&7, (w>>3)&7, size)
}

// extReg decodes the D/A flag and register number in bits 15-12 of an
// extension word.
func extReg(ext uint16) Operand {
	r := (ext >> 12) & 7
	if ext&0x8000 != 0 {
		return AddrReg(r)
	}
	return DataReg(r)
}

func decImplied(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op}
}

// decUnsupported rejects an encoding that is recognised but has no
// representation in the operand model.
func decUnsupported(c *cursor, f *instFormat, w uint16) Inst {
	c.fail(NotImplemented)
	return Inst{}
}

// decImmToImplied is ORI/ANDI/EORI to CCR or SR.
func decImmToImplied(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.imm(f.size), Implied{}}}
}

// decImmEA is an immediate source and an effective address destination.
func decImmEA(c *cursor, f *instFormat, w uint16) Inst {
	src := c.imm(f.size)
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{src, c.eaLow(w, f.size)}}
}

// decEA has the effective address as its only operand.
func decEA(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size)}}
}

func decEAToDn(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size), DataReg(reg9(w))}}
}

func decDnToEA(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(reg9(w)), c.eaLow(w, f.size)}}
}

func decEAToAn(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size), AddrReg(reg9(w))}}
}

// decImpliedToEA is MOVE from SR or CCR.
func decImpliedToEA(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Implied{}, c.eaLow(w, f.size)}}
}

// decEAToImplied is MOVE to SR or CCR.
func decEAToImplied(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size), Implied{}}}
}

// decMove is MOVE and MOVEA. The source is resolved first since its
// extension words precede the destination's.
func decMove(c *cursor, f *instFormat, w uint16) Inst {
	src := c.eaLow(w, f.size)
	dst := c.ea(reg9(w), (w>>6)&7, f.size)
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{src, dst}}
}

// decDnDn is the register form of ABCD, SBCD, ADDX and SUBX.
func decDnDn(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(w & 7), DataReg(reg9(w))}}
}

// decPreDecs is the memory form of ABCD, SBCD, ADDX and SUBX.
func decPreDecs(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{ARPreDec{AddrReg(w & 7)}, ARPreDec{AddrReg(reg9(w))}}}
}

// decPostIncs is CMPM.
func decPostIncs(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{ARPostInc{AddrReg(w & 7)}, ARPostInc{AddrReg(reg9(w))}}}
}

func decExgDD(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(reg9(w)), DataReg(w & 7)}}
}

func decExgAA(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{AddrReg(reg9(w)), AddrReg(w & 7)}}
}

func decExgDA(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(reg9(w)), AddrReg(w & 7)}}
}

// decPack is PACK and UNPK; the adjustment word follows the opcode.
func decPack(c *cursor, f *instFormat, w uint16) Inst {
	var args [2]Operand
	if w&0x0008 != 0 {
		args = [2]Operand{ARPreDec{AddrReg(w & 7)}, ARPreDec{AddrReg(reg9(w))}}
	} else {
		args = [2]Operand{DataReg(w & 7), DataReg(reg9(w))}
	}
	adj := c.pull16()
	return Inst{Size: f.size, Op: f.op, Args: args, Extra: PackAdjust(adj)}
}

// decQuick is ADDQ and SUBQ.
func decQuick(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Imm8(quick(reg9(w))), c.eaLow(w, f.size)}}
}

func decMoveq(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Imm8(w & 0xff), DataReg(reg9(w))}}
}

// decShiftImm is a register shift or rotate by a quick count.
func decShiftImm(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Imm8(quick(reg9(w))), DataReg(w & 7)}}
}

// decShiftReg is a register shift or rotate by a count held in a data
// register.
func decShiftReg(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(reg9(w)), DataReg(w & 7)}}
}

// bitOpSize is long for a data register destination and byte for memory.
func bitOpSize(w uint16) int {
	if (w>>3)&7 == modeDn {
		return 4
	}
	return 1
}

// decBitStatic is BTST/BCHG/BCLR/BSET with the bit number in an extension
// word.
func decBitStatic(c *cursor, f *instFormat, w uint16) Inst {
	n := c.pull16()
	return Inst{Size: bitOpSize(w), Op: f.op, Args: [2]Operand{Imm8(n & 0xff), c.eaLow(w, 1)}}
}

// decBitDynamic is BTST/BCHG/BCLR/BSET with the bit number in a data
// register.
func decBitDynamic(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: bitOpSize(w), Op: f.op, Args: [2]Operand{DataReg(reg9(w)), c.eaLow(w, 1)}}
}

func decMovep(c *cursor, f *instFormat, w uint16) Inst {
	size := 2
	if w&0x0040 != 0 {
		size = 4
	}
	d := int16(c.pull16())
	mem := ARDisp{Reg: AddrReg(w & 7), Disp: Displacement{Base: int32(d)}}
	dn := DataReg(reg9(w))
	if w&0x0080 != 0 {
		return Inst{Size: size, Op: f.op, Args: [2]Operand{dn, mem}}
	}
	return Inst{Size: size, Op: f.op, Args: [2]Operand{mem, dn}}
}

// decCas is CAS Dc,Du,<ea>.
func decCas(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	pair := DataRegPair{First: DataReg(ext & 7), Second: DataReg((ext >> 6) & 7)}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{pair, c.eaLow(w, f.size)}}
}

// decChk2 is CHK2 and CMP2. The guard on the extension word has already
// told the two apart, so the word is only peeked here.
func decChk2(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.peekWord(0)
	c.skipWords(1)
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size), extReg(ext)}}
}

func decMoves(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	rn := extReg(ext)
	if ext&0x0800 != 0 {
		return Inst{Size: f.size, Op: f.op, Args: [2]Operand{rn, c.eaLow(w, f.size)}}
	}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size), rn}}
}

func decCallm(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Imm8(ext & 0xff), c.eaLow(w, f.size)}}
}

func decRtm(c *cursor, f *instFormat, w uint16) Inst {
	var rn Operand = DataReg(w & 7)
	if w&0x0008 != 0 {
		rn = AddrReg(w & 7)
	}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{rn}}
}

// decImm has a single immediate operand following the opcode word.
func decImm(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.imm(2)}}
}

// decMovecFrom is MOVEC Rc,Rn.
func decMovecFrom(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{ControlReg(ext & 0xfff), extReg(ext)}}
}

// decMovecTo is MOVEC Rn,Rc.
func decMovecTo(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{extReg(ext), ControlReg(ext & 0xfff)}}
}

func decTrap(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Imm8(w & 0xf)}}
}

func decBkpt(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Imm8(w & 7)}}
}

// decLink is LINK.W and LINK.L; the displacement size is the form size.
func decLink(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{AddrReg(w & 7), c.imm(f.size)}}
}

func decAn(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{AddrReg(w & 7)}}
}

func decDn(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(w & 7)}}
}

func decAnToUSP(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{AddrReg(w & 7), Implied{}}}
}

func decUSPToAn(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{Implied{}, AddrReg(w & 7)}}
}

// decMovem reads the register mask before the effective address. Bit 10
// set means memory to registers.
func decMovem(c *cursor, f *instFormat, w uint16) Inst {
	if mode := (w >> 3) & 7; mode == modeDn || mode == modeAn {
		c.fail(NotImplemented)
	}
	mask := c.pull16()
	list := movemList(mask, (w>>3)&7 == modePreDec)
	ea := c.eaLow(w, f.size)
	if w&0x0400 != 0 {
		return Inst{Size: f.size, Op: f.op, Args: [2]Operand{ea, list}}
	}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{list, ea}}
}

// decMulLong is MULU.L and MULS.L: Dl, or Dh:Dl for a 64-bit product.
func decMulLong(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	dl := DataReg((ext >> 12) & 7)
	var dst Operand = dl
	if ext&0x0400 != 0 {
		dst = DataRegPair{First: DataReg(ext & 7), Second: dl}
	}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size), dst}}
}

// decDivLong is DIVU.L and DIVS.L. A 32-bit dividend with distinct
// remainder and quotient registers is the DIVUL/DIVSL form.
func decDivLong(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	dq := DataReg((ext >> 12) & 7)
	dr := DataReg(ext & 7)
	op := f.op
	var dst Operand = dq
	switch {
	case ext&0x0400 != 0:
		dst = DataRegPair{First: dr, Second: dq}
	case dr != dq:
		dst = DataRegPair{First: dr, Second: dq}
		if op == DIVS {
			op = DIVSL
		} else {
			op = DIVUL
		}
	}
	return Inst{Size: f.size, Op: op, Args: [2]Operand{c.eaLow(w, f.size), dst}}
}

// decDBcc is DBcc Dn,<label>; the displacement word follows the opcode.
func decDBcc(c *cursor, f *instFormat, w uint16) Inst {
	pos := uint32(c.pos)
	d := int16(c.pull16())
	target := PCDisp{Offset: pos, Disp: Displacement{Base: int32(d)}}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(w & 7), target}, Extra: cc(w >> 8)}
}

// decTrapcc is TRAPcc with an optional word or long operand, the form size.
func decTrapcc(c *cursor, f *instFormat, w uint16) Inst {
	inst := Inst{Size: f.size, Op: f.op, Extra: cc(w >> 8)}
	if f.size != 0 {
		inst.Args[0] = c.imm(f.size)
	}
	return inst
}

func decScc(c *cursor, f *instFormat, w uint16) Inst {
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size)}, Extra: cc(w >> 8)}
}

// decBranch is BRA, BSR and Bcc. Size 1 is the displacement embedded in
// the opcode word, 2 and 4 follow it.
func decBranch(c *cursor, f *instFormat, w uint16) Inst {
	pos := uint32(c.pos)
	var d int32
	switch f.size {
	case 1:
		d = int32(int8(w & 0xff))
	case 2:
		d = int32(int16(c.pull16()))
	case 4:
		d = int32(c.pull32())
	}
	inst := Inst{Size: f.size, Op: f.op, Args: [2]Operand{PCDisp{Offset: pos, Disp: Displacement{Base: d}}}}
	if f.op == BCC {
		inst.Extra = cc(w >> 8)
	}
	return inst
}

// decBitfield is the BFxxx family. The extension word carries the
// {offset:width} specifier and, for the extracting and inserting forms,
// the data register.
func decBitfield(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	spec := bitfieldSpec(ext)
	ea := c.eaLow(w, f.size)
	dn := DataReg((ext >> 12) & 7)

	inst := Inst{Size: f.size, Op: f.op, Extra: spec}
	switch f.op {
	case BFEXTU, BFEXTS, BFFFO:
		inst.Args = [2]Operand{ea, dn}
	case BFINS:
		inst.Args = [2]Operand{dn, ea}
	default:
		inst.Args = [2]Operand{ea}
	}
	return inst
}

// decMove16PostIncs is MOVE16 (Ax)+,(Ay)+.
func decMove16PostIncs(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{ARPostInc{AddrReg(w & 7)}, ARPostInc{AddrReg((ext >> 12) & 7)}}}
}

// decMove16Abs is MOVE16 between an address register and an absolute
// long address. Bit 3 set means the absolute address is the source, bit 4
// set selects (An) rather than (An)+.
func decMove16Abs(c *cursor, f *instFormat, w uint16) Inst {
	var an Operand = ARPostInc{AddrReg(w & 7)}
	if w&0x0010 != 0 {
		an = ARIndirect{AddrReg(w & 7)}
	}
	abs := Abs32(c.pull32())
	if w&0x0008 != 0 {
		return Inst{Size: f.size, Op: f.op, Args: [2]Operand{abs, an}}
	}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{an, abs}}
}

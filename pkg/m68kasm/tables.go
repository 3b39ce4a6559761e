package m68kasm

// groups holds the instruction forms of each opcode group, indexed by the
// top four bits of the first word. Order matters: within a group the first
// matching form wins, so specific encodings precede the general forms they
// overlap.
var groups = [16][]instFormat{
	0x0: group0,
	0x1: group1,
	0x2: group2,
	0x3: group3,
	0x4: group4,
	0x5: group5,
	0x6: group6,
	0x7: group7,
	0x8: group8,
	0x9: group9,
	0xa: nil, // line A is unassigned
	0xb: groupB,
	0xc: groupC,
	0xd: groupD,
	0xe: groupE,
	0xf: groupF,
}

// sized expands a form whose size lives in bits 7-6 into its byte, word
// and long encodings. mask must not cover the size field.
func sized(mask, value uint16, op Op, fn decodeFunc) []instFormat {
	r := make([]instFormat, 0, 3)
	for s := uint16(0); s < 3; s++ {
		r = append(r, instFormat{mask: mask | 0x00c0, value: value | s<<6, op: op, size: sizeField(s), decode: fn})
	}
	return r
}

func concat(lists ...[]instFormat) []instFormat {
	var r []instFormat
	for _, l := range lists {
		r = append(r, l...)
	}
	return r
}

var group0 = concat(
	[]instFormat{
		{mask: 0xffff, value: 0x003c, op: ORITOCCR, size: 1, decode: decImmToImplied},
		{mask: 0xffff, value: 0x007c, op: ORITOSR, size: 2, decode: decImmToImplied},
		{mask: 0xffff, value: 0x023c, op: ANDITOCCR, size: 1, decode: decImmToImplied},
		{mask: 0xffff, value: 0x027c, op: ANDITOSR, size: 2, decode: decImmToImplied},
		{mask: 0xffff, value: 0x0a3c, op: EORITOCCR, size: 1, decode: decImmToImplied},
		{mask: 0xffff, value: 0x0a7c, op: EORITOSR, size: 2, decode: decImmToImplied},

		{mask: 0xfff0, value: 0x06c0, op: RTM, decode: decRtm},
		{mask: 0xffc0, value: 0x06c0, op: CALLM, decode: decCallm},

		{mask: 0xffc0, value: 0x00c0, mask2: 0x0fff, value2: 0x0000, op: CMP2, size: 1, decode: decChk2},
		{mask: 0xffc0, value: 0x00c0, mask2: 0x0fff, value2: 0x0800, op: CHK2, size: 1, decode: decChk2},
		{mask: 0xffc0, value: 0x02c0, mask2: 0x0fff, value2: 0x0000, op: CMP2, size: 2, decode: decChk2},
		{mask: 0xffc0, value: 0x02c0, mask2: 0x0fff, value2: 0x0800, op: CHK2, size: 2, decode: decChk2},
		{mask: 0xffc0, value: 0x04c0, mask2: 0x0fff, value2: 0x0000, op: CMP2, size: 4, decode: decChk2},
		{mask: 0xffc0, value: 0x04c0, mask2: 0x0fff, value2: 0x0800, op: CHK2, size: 4, decode: decChk2},

		// CAS2 shares the immediate mode slot of CAS.
		{mask: 0xffff, value: 0x0cfc, op: CAS, size: 2, decode: decUnsupported},
		{mask: 0xffff, value: 0x0efc, op: CAS, size: 4, decode: decUnsupported},
		{mask: 0xffc0, value: 0x0ac0, op: CAS, size: 1, decode: decCas},
		{mask: 0xffc0, value: 0x0cc0, op: CAS, size: 2, decode: decCas},
		{mask: 0xffc0, value: 0x0ec0, op: CAS, size: 4, decode: decCas},
	},
	sized(0xff00, 0x0e00, MOVES, decMoves),
	[]instFormat{
		{mask: 0xffc0, value: 0x0800, op: BTST, decode: decBitStatic},
		{mask: 0xffc0, value: 0x0840, op: BCHG, decode: decBitStatic},
		{mask: 0xffc0, value: 0x0880, op: BCLR, decode: decBitStatic},
		{mask: 0xffc0, value: 0x08c0, op: BSET, decode: decBitStatic},

		{mask: 0xf138, value: 0x0108, op: MOVEP, decode: decMovep},

		{mask: 0xf1c0, value: 0x0100, op: BTST, decode: decBitDynamic},
		{mask: 0xf1c0, value: 0x0140, op: BCHG, decode: decBitDynamic},
		{mask: 0xf1c0, value: 0x0180, op: BCLR, decode: decBitDynamic},
		{mask: 0xf1c0, value: 0x01c0, op: BSET, decode: decBitDynamic},
	},
	sized(0xff00, 0x0000, ORI, decImmEA),
	sized(0xff00, 0x0200, ANDI, decImmEA),
	sized(0xff00, 0x0400, SUBI, decImmEA),
	sized(0xff00, 0x0600, ADDI, decImmEA),
	sized(0xff00, 0x0a00, EORI, decImmEA),
	sized(0xff00, 0x0c00, CMPI, decImmEA),
)

var group1 = []instFormat{
	{mask: 0xf000, value: 0x1000, op: MOVE, size: 1, decode: decMove},
}

var group2 = []instFormat{
	{mask: 0xf1c0, value: 0x2040, op: MOVEA, size: 4, decode: decEAToAn},
	{mask: 0xf000, value: 0x2000, op: MOVE, size: 4, decode: decMove},
}

var group3 = []instFormat{
	{mask: 0xf1c0, value: 0x3040, op: MOVEA, size: 2, decode: decEAToAn},
	{mask: 0xf000, value: 0x3000, op: MOVE, size: 2, decode: decMove},
}

var group4 = concat(
	[]instFormat{
		{mask: 0xffff, value: 0x4afc, op: ILLEGAL, decode: decImplied},
		{mask: 0xffff, value: 0x4e70, op: RESET, decode: decImplied},
		{mask: 0xffff, value: 0x4e71, op: NOP, decode: decImplied},
		{mask: 0xffff, value: 0x4e72, op: STOP, size: 2, decode: decImm},
		{mask: 0xffff, value: 0x4e73, op: RTE, decode: decImplied},
		{mask: 0xffff, value: 0x4e74, op: RTD, decode: decImm},
		{mask: 0xffff, value: 0x4e75, op: RTS, decode: decImplied},
		{mask: 0xffff, value: 0x4e76, op: TRAPV, decode: decImplied},
		{mask: 0xffff, value: 0x4e77, op: RTR, decode: decImplied},
		{mask: 0xffff, value: 0x4e7a, op: MOVEC, size: 4, decode: decMovecFrom},
		{mask: 0xffff, value: 0x4e7b, op: MOVEC, size: 4, decode: decMovecTo},

		{mask: 0xfff0, value: 0x4e40, op: TRAP, decode: decTrap},
		{mask: 0xfff8, value: 0x4e50, op: LINK, size: 2, decode: decLink},
		{mask: 0xfff8, value: 0x4e58, op: UNLK, decode: decAn},
		{mask: 0xfff8, value: 0x4e60, op: MOVETOUSP, size: 4, decode: decAnToUSP},
		{mask: 0xfff8, value: 0x4e68, op: MOVEFROMUSP, size: 4, decode: decUSPToAn},
		{mask: 0xffc0, value: 0x4e80, op: JSR, decode: decEA},
		{mask: 0xffc0, value: 0x4ec0, op: JMP, decode: decEA},

		{mask: 0xfff8, value: 0x4808, op: LINK, size: 4, decode: decLink},
		{mask: 0xffc0, value: 0x4800, op: NBCD, size: 1, decode: decEA},
		{mask: 0xfff8, value: 0x4840, op: SWAP, size: 4, decode: decDn},
		{mask: 0xfff8, value: 0x4848, op: BKPT, decode: decBkpt},
		{mask: 0xffc0, value: 0x4840, op: PEA, size: 4, decode: decEA},

		{mask: 0xfff8, value: 0x4880, op: EXT, size: 2, decode: decDn},
		{mask: 0xfff8, value: 0x48c0, op: EXT, size: 4, decode: decDn},
		{mask: 0xfff8, value: 0x49c0, op: EXTB, size: 4, decode: decDn},
		{mask: 0xfbc0, value: 0x4880, op: MOVEM, size: 2, decode: decMovem},
		{mask: 0xfbc0, value: 0x48c0, op: MOVEM, size: 4, decode: decMovem},

		{mask: 0xffc0, value: 0x4c00, mask2: 0x8bf8, value2: 0x0000, op: MULU, size: 4, decode: decMulLong},
		{mask: 0xffc0, value: 0x4c00, mask2: 0x8bf8, value2: 0x0800, op: MULS, size: 4, decode: decMulLong},
		{mask: 0xffc0, value: 0x4c40, mask2: 0x8bf8, value2: 0x0000, op: DIVU, size: 4, decode: decDivLong},
		{mask: 0xffc0, value: 0x4c40, mask2: 0x8bf8, value2: 0x0800, op: DIVS, size: 4, decode: decDivLong},

		{mask: 0xf1c0, value: 0x41c0, op: LEA, size: 4, decode: decEAToAn},
		{mask: 0xf1c0, value: 0x4100, op: CHK, size: 4, decode: decEAToDn},
		{mask: 0xf1c0, value: 0x4180, op: CHK, size: 2, decode: decEAToDn},

		{mask: 0xffc0, value: 0x40c0, op: MOVEFROMSR, size: 2, decode: decImpliedToEA},
		{mask: 0xffc0, value: 0x42c0, op: MOVEFROMCCR, size: 2, decode: decImpliedToEA},
		{mask: 0xffc0, value: 0x44c0, op: MOVETOCCR, size: 2, decode: decEAToImplied},
		{mask: 0xffc0, value: 0x46c0, op: MOVETOSR, size: 2, decode: decEAToImplied},
		{mask: 0xffc0, value: 0x4ac0, op: TAS, size: 1, decode: decEA},
	},
	sized(0xff00, 0x4000, NEGX, decEA),
	sized(0xff00, 0x4200, CLR, decEA),
	sized(0xff00, 0x4400, NEG, decEA),
	sized(0xff00, 0x4600, NOT, decEA),
	sized(0xff00, 0x4a00, TST, decEA),
)

var group5 = concat(
	[]instFormat{
		{mask: 0xf0f8, value: 0x50c8, op: DBCC, size: 2, decode: decDBcc},
		{mask: 0xf0ff, value: 0x50fa, op: TRAPCC, size: 2, decode: decTrapcc},
		{mask: 0xf0ff, value: 0x50fb, op: TRAPCC, size: 4, decode: decTrapcc},
		{mask: 0xf0ff, value: 0x50fc, op: TRAPCC, decode: decTrapcc},
		{mask: 0xf0c0, value: 0x50c0, op: SCC, size: 1, decode: decScc},
	},
	sized(0xf100, 0x5000, ADDQ, decQuick),
	sized(0xf100, 0x5100, SUBQ, decQuick),
)

var group6 = []instFormat{
	{mask: 0xffff, value: 0x6000, op: BRA, size: 2, decode: decBranch},
	{mask: 0xffff, value: 0x60ff, op: BRA, size: 4, decode: decBranch},
	{mask: 0xff00, value: 0x6000, op: BRA, size: 1, decode: decBranch},
	{mask: 0xffff, value: 0x6100, op: BSR, size: 2, decode: decBranch},
	{mask: 0xffff, value: 0x61ff, op: BSR, size: 4, decode: decBranch},
	{mask: 0xff00, value: 0x6100, op: BSR, size: 1, decode: decBranch},
	{mask: 0xf0ff, value: 0x6000, op: BCC, size: 2, decode: decBranch},
	{mask: 0xf0ff, value: 0x60ff, op: BCC, size: 4, decode: decBranch},
	{mask: 0xf000, value: 0x6000, op: BCC, size: 1, decode: decBranch},
}

var group7 = []instFormat{
	{mask: 0xf100, value: 0x7000, op: MOVEQ, size: 4, decode: decMoveq},
}

var group8 = concat(
	[]instFormat{
		{mask: 0xf1c0, value: 0x80c0, op: DIVU, size: 2, decode: decEAToDn},
		{mask: 0xf1c0, value: 0x81c0, op: DIVS, size: 2, decode: decEAToDn},
		{mask: 0xf1f8, value: 0x8100, op: SBCD, size: 1, decode: decDnDn},
		{mask: 0xf1f8, value: 0x8108, op: SBCD, size: 1, decode: decPreDecs},
		{mask: 0xf1f0, value: 0x8140, op: PACK, decode: decPack},
		{mask: 0xf1f0, value: 0x8180, op: UNPK, decode: decPack},
	},
	sized(0xf100, 0x8000, OR, decEAToDn),
	sized(0xf100, 0x8100, OR, decDnToEA),
)

// addSub builds the shared layout of groups 9 and D.
func addSub(base uint16, op, opa, opx Op) []instFormat {
	return concat(
		[]instFormat{
			{mask: 0xf1c0, value: base | 0x00c0, op: opa, size: 2, decode: decEAToAn},
			{mask: 0xf1c0, value: base | 0x01c0, op: opa, size: 4, decode: decEAToAn},
		},
		sized(0xf138, base|0x0100, opx, decDnDn),
		sized(0xf138, base|0x0108, opx, decPreDecs),
		sized(0xf100, base, op, decEAToDn),
		sized(0xf100, base|0x0100, op, decDnToEA),
	)
}

var group9 = addSub(0x9000, SUB, SUBA, SUBX)

var groupB = concat(
	[]instFormat{
		{mask: 0xf1c0, value: 0xb0c0, op: CMPA, size: 2, decode: decEAToAn},
		{mask: 0xf1c0, value: 0xb1c0, op: CMPA, size: 4, decode: decEAToAn},
	},
	sized(0xf138, 0xb108, CMPM, decPostIncs),
	sized(0xf100, 0xb000, CMP, decEAToDn),
	sized(0xf100, 0xb100, EOR, decDnToEA),
)

var groupC = concat(
	[]instFormat{
		{mask: 0xf1c0, value: 0xc0c0, op: MULU, size: 2, decode: decEAToDn},
		{mask: 0xf1c0, value: 0xc1c0, op: MULS, size: 2, decode: decEAToDn},
		{mask: 0xf1f8, value: 0xc100, op: ABCD, size: 1, decode: decDnDn},
		{mask: 0xf1f8, value: 0xc108, op: ABCD, size: 1, decode: decPreDecs},
		{mask: 0xf1f8, value: 0xc140, op: EXG, size: 4, decode: decExgDD},
		{mask: 0xf1f8, value: 0xc148, op: EXG, size: 4, decode: decExgAA},
		{mask: 0xf1f8, value: 0xc188, op: EXG, size: 4, decode: decExgDA},
	},
	sized(0xf100, 0xc000, AND, decEAToDn),
	sized(0xf100, 0xc100, AND, decDnToEA),
)

var groupD = addSub(0xd000, ADD, ADDA, ADDX)

// shiftOps is indexed by the type field of a shift or rotate and its
// direction bit.
var shiftOps = [4][2]Op{
	{ASR, ASL},
	{LSR, LSL},
	{ROXR, ROXL},
	{ROR, ROL},
}

// shifts builds the memory and register forms of the shift and rotate
// instructions. Memory forms shift a word by one bit and carry the type in
// bits 10-9; register forms carry it in bits 4-3 with bit 5 choosing
// between a quick count and a count register.
func shifts() []instFormat {
	var r []instFormat
	for typ := uint16(0); typ < 4; typ++ {
		for dir := uint16(0); dir < 2; dir++ {
			r = append(r, instFormat{
				mask:   0xffc0,
				value:  0xe0c0 | typ<<9 | dir<<8,
				op:     shiftOps[typ][dir],
				size:   2,
				decode: decEA,
			})
		}
	}
	for typ := uint16(0); typ < 4; typ++ {
		for dir := uint16(0); dir < 2; dir++ {
			op := shiftOps[typ][dir]
			r = append(r, sized(0xf138, 0xe000|dir<<8|typ<<3, op, decShiftImm)...)
			r = append(r, sized(0xf138, 0xe020|dir<<8|typ<<3, op, decShiftReg)...)
		}
	}
	return r
}

var groupE = concat(
	[]instFormat{
		{mask: 0xffc0, value: 0xe8c0, op: BFTST, decode: decBitfield},
		{mask: 0xffc0, value: 0xe9c0, op: BFEXTU, decode: decBitfield},
		{mask: 0xffc0, value: 0xeac0, op: BFCHG, decode: decBitfield},
		{mask: 0xffc0, value: 0xebc0, op: BFEXTS, decode: decBitfield},
		{mask: 0xffc0, value: 0xecc0, op: BFCLR, decode: decBitfield},
		{mask: 0xffc0, value: 0xedc0, op: BFFFO, decode: decBitfield},
		{mask: 0xffc0, value: 0xeec0, op: BFSET, decode: decBitfield},
		{mask: 0xffc0, value: 0xefc0, op: BFINS, decode: decBitfield},
	},
	shifts(),
)

var groupF = []instFormat{
	{mask: 0xffc0, value: 0xf200, op: FMOVE, decode: decFPGeneral},
	{mask: 0xfff8, value: 0xf248, op: FDBCC, size: 2, decode: decFDBcc},
	{mask: 0xffff, value: 0xf27a, op: FTRAPCC, size: 2, decode: decFTrapcc},
	{mask: 0xffff, value: 0xf27b, op: FTRAPCC, size: 4, decode: decFTrapcc},
	{mask: 0xffff, value: 0xf27c, op: FTRAPCC, decode: decFTrapcc},
	{mask: 0xffc0, value: 0xf240, op: FSCC, size: 1, decode: decFScc},
	{mask: 0xffff, value: 0xf280, mask2: 0xffff, value2: 0x0000, op: FNOP, decode: decFNop},
	{mask: 0xffc0, value: 0xf280, op: FBCC, size: 2, decode: decFBcc},
	{mask: 0xffc0, value: 0xf2c0, op: FBCC, size: 4, decode: decFBcc},
	{mask: 0xffc0, value: 0xf300, op: FSAVE, decode: decEA},
	{mask: 0xffc0, value: 0xf340, op: FRESTORE, decode: decEA},
	{mask: 0xfff8, value: 0xf620, mask2: 0x8fff, value2: 0x8000, op: MOVE16, decode: decMove16PostIncs},
	{mask: 0xffe0, value: 0xf600, op: MOVE16, decode: decMove16Abs},
}

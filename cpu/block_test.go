package cpu

import "testing"

func TestLDIRCopiesBlockAndClearsBC(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SetHL(0x2000)
	c.SetDE(0x3000)
	c.SetBC(0x0003)
	c.Mem.Load(0x2000, []byte{0x11, 0x22, 0x33})
	rig.load(0x0000, []byte{0xED, 0xB0}) // LDIR
	rig.run(t, 3)                        // 3 repeats, one Step per repeat
	requireEqualU8(t, "(0x3000)", c.Mem.Read8(0x3000), 0x11)
	requireEqualU8(t, "(0x3001)", c.Mem.Read8(0x3001), 0x22)
	requireEqualU8(t, "(0x3002)", c.Mem.Read8(0x3002), 0x33)
	requireEqualU16(t, "BC", c.BC(), 0x0000)
	requireEqualU16(t, "HL", c.HL(), 0x2003)
	requireEqualU16(t, "DE", c.DE(), 0x3003)
	requireEqualU16(t, "PC", c.PC, 0x0002)
}

func TestLDDRCopiesBlockBackwards(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SetHL(0x2002)
	c.SetDE(0x3002)
	c.SetBC(0x0002)
	c.Mem.Load(0x2001, []byte{0xAA, 0xBB})
	rig.load(0x0000, []byte{0xED, 0xB8}) // LDDR
	rig.run(t, 2)
	requireEqualU8(t, "(0x3002)", c.Mem.Read8(0x3002), 0xBB)
	requireEqualU8(t, "(0x3001)", c.Mem.Read8(0x3001), 0xAA)
	requireEqualU16(t, "BC", c.BC(), 0x0000)
}

func TestCPIRStopsOnMatch(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x42
	c.SetHL(0x2000)
	c.SetBC(0x0005)
	c.Mem.Load(0x2000, []byte{0x01, 0x02, 0x42, 0x04, 0x05})
	rig.load(0x0000, []byte{0xED, 0xB1}) // CPIR
	rig.run(t, 3)                        // matches on the 3rd byte
	requireFlag(t, c, "Z", FlagZ, true)
	requireEqualU16(t, "HL", c.HL(), 0x2003)
	requireEqualU16(t, "BC", c.BC(), 0x0002)
}

func TestCPIRExhaustsWithoutMatch(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0xFF
	c.SetHL(0x2000)
	c.SetBC(0x0002)
	c.Mem.Load(0x2000, []byte{0x01, 0x02})
	rig.load(0x0000, []byte{0xED, 0xB1}) // CPIR
	rig.run(t, 2)
	requireFlag(t, c, "Z", FlagZ, false)
	requireEqualU16(t, "BC", c.BC(), 0x0000)
	requireEqualU16(t, "PC", c.PC, 0x0002)
}

func TestINIReadsPortIntoMemoryAndDecrementsB(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.RegisterInHandler(0x10, func(port uint16) byte { return 0x5A })
	c.B = 0x01
	c.C = 0x10
	c.SetHL(0x4000)
	rig.load(0x0000, []byte{0xED, 0xA2}) // INI
	rig.run(t, 1)
	requireEqualU8(t, "(HL)", c.Mem.Read8(0x4000), 0x5A)
	requireEqualU8(t, "B", c.B, 0x00)
	requireFlag(t, c, "Z", FlagZ, true)
	requireEqualU16(t, "HL", c.HL(), 0x4001)
}

func TestOTIRWritesPortRepeatedlyUntilBIsZero(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	var written []byte
	c.RegisterOutHandler(0x20, func(port uint16, v byte) { written = append(written, v) })
	c.B = 0x02
	c.C = 0x20
	c.SetHL(0x5000)
	c.Mem.Load(0x5000, []byte{0x11, 0x22})
	rig.load(0x0000, []byte{0xED, 0xB3}) // OTIR
	rig.run(t, 2)
	if len(written) != 2 || written[0] != 0x11 || written[1] != 0x22 {
		t.Fatalf("written = %v, want [0x11 0x22]", written)
	}
	requireEqualU8(t, "B", c.B, 0x00)
	requireEqualU16(t, "PC", c.PC, 0x0002)
}

func TestINANDispatchesByPortNotByCombinedAddress(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.RegisterInHandler(0x01, func(port uint16) byte { return 0x42 })
	c.A = 0x99 // non-zero A must not shift the handler lookup off port 1
	rig.load(0x0000, []byte{0xDB, 0x01}) // IN A,(1)
	rig.run(t, 1)
	requireEqualU8(t, "A", c.A, 0x42)
	requireEqualU16(t, "WZ", c.WZ, uint16(0x99)<<8|0x02)
}

func TestINrCAndOUTCrRoundTripThroughHandlers(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	var stored byte
	c.RegisterOutHandler(0x30, func(port uint16, v byte) { stored = v })
	c.RegisterInHandler(0x30, func(port uint16) byte { return stored })
	c.B = 0x00
	c.C = 0x30
	c.A = 0x99
	rig.load(0x0000, []byte{0xED, 0x79, 0xED, 0x78}) // OUT (C),A; IN A,(C)
	c.A = 0x99
	rig.run(t, 1)
	c.A = 0x00
	rig.run(t, 1)
	requireEqualU8(t, "A", c.A, 0x99)
}

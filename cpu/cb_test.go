package cpu

import "testing"

func TestCBRLCSetsCarryFromBit7(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.B = 0x80
	rig.load(0x0000, []byte{0xCB, 0x00}) // RLC B
	rig.run(t, 1)
	requireEqualU8(t, "B", c.B, 0x01)
	requireFlag(t, c, "C", FlagC, true)
}

func TestCBBitHLUsesWZForUndocumentedFlags(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SetHL(0x1000)
	c.Mem.Write8(0x1000, 0x00)
	rig.load(0x0100, []byte{0xCB, 0x46}) // BIT 0,(HL)
	c.PC = 0x0100
	rig.run(t, 1)
	requireFlag(t, c, "Z", FlagZ, true)
	requireFlag(t, c, "H", FlagH, true)
	// WZ = HL+1 = 0x1001; its high byte (0x10) has neither bit 3 nor 5 set.
	requireFlag(t, c, "X", FlagX, false)
	requireFlag(t, c, "Y", FlagY, false)
}

func TestCBSetAndResOperateOnMemory(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SetHL(0x4000)
	c.Mem.Write8(0x4000, 0x00)
	rig.load(0x0000, []byte{0xCB, 0xC6}) // SET 0,(HL)
	rig.run(t, 1)
	requireEqualU8(t, "(HL)", c.Mem.Read8(0x4000), 0x01)

	rig.load(0x0000, []byte{0xCB, 0x86}) // RES 0,(HL)
	c.PC = 0x0000
	rig.run(t, 1)
	requireEqualU8(t, "(HL)", c.Mem.Read8(0x4000), 0x00)
}

func TestCBSLLInsertsOneAtBit0(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.C = 0x00
	rig.load(0x0000, []byte{0xCB, 0x31}) // SLL C
	rig.run(t, 1)
	requireEqualU8(t, "C", c.C, 0x01)
}

func TestCBSRAPreservesSignBit(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.D = 0x81
	rig.load(0x0000, []byte{0xCB, 0x2A}) // SRA D
	rig.run(t, 1)
	requireEqualU8(t, "D", c.D, 0xC0)
	requireFlag(t, c, "C", FlagC, true)
}

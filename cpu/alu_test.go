package cpu

import "testing"

func TestAdd8SetsOverflowNotParity(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x7F
	c.add8(0x01, 0)
	requireEqualU8(t, "A", c.A, 0x80)
	requireFlag(t, c, "PV", FlagPV, true) // signed overflow: 127+1 = -128
	requireFlag(t, c, "S", FlagS, true)
	requireFlag(t, c, "H", FlagH, true)
}

func TestAdc8IncludesCarryIn(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x00
	c.SetFlag(FlagC, true)
	c.add8(0x00, 1)
	requireEqualU8(t, "A", c.A, 0x01)
	requireFlag(t, c, "Z", FlagZ, false)
	requireFlag(t, c, "C", FlagC, false)
}

func TestSub8SetsHalfCarryAndBorrow(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x00
	c.sub8(0x01, 0, false)
	requireEqualU8(t, "A", c.A, 0xFF)
	requireFlag(t, c, "C", FlagC, true)
	requireFlag(t, c, "H", FlagH, true)
	requireFlag(t, c, "N", FlagN, true)
	requireFlag(t, c, "S", FlagS, true)
}

func TestCPDoesNotModifyAccumulator(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x40
	c.sub8(0x40, 0, true)
	requireEqualU8(t, "A", c.A, 0x40)
	requireFlag(t, c, "Z", FlagZ, true)
}

func TestAndSetsHalfCarryAlways(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0xFF
	c.and8(0x0F)
	requireEqualU8(t, "A", c.A, 0x0F)
	requireFlag(t, c, "H", FlagH, true)
	requireFlag(t, c, "C", FlagC, false)
}

func TestOrClearsHalfCarryAndSetsSign(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0xF0
	c.or8(0x0F)
	requireEqualU8(t, "A", c.A, 0xFF)
	requireFlag(t, c, "H", FlagH, false)
	requireFlag(t, c, "S", FlagS, true)
}

func TestInc8SetsOverflowOnlyAt0x7F(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	requireEqualU8(t, "inc(0x7F)", c.inc8(0x7F), 0x80)
	requireFlag(t, c, "PV", FlagPV, true)
	requireEqualU8(t, "inc(0x00)", c.inc8(0x00), 0x01)
	requireFlag(t, c, "PV", FlagPV, false)
}

func TestDec8PreservesCarry(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SetFlag(FlagC, true)
	c.dec8(0x01)
	requireFlag(t, c, "C", FlagC, true)
	requireFlag(t, c, "Z", FlagZ, true)
	requireFlag(t, c, "N", FlagN, true)
}

func TestAdd16CarryAndHalfCarry(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	res := c.add16(0xFFFF, 0x0001)
	requireEqualU16(t, "HL", res, 0x0000)
	requireFlag(t, c, "C", FlagC, true)
	requireFlag(t, c, "H", FlagH, true)
}

func TestAdcHLSetsZeroAcrossFullWord(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	res := c.adcHL(0xFFFF, 0x0000, 1)
	requireEqualU16(t, "HL", res, 0x0000)
	requireFlag(t, c, "Z", FlagZ, true)
	requireFlag(t, c, "C", FlagC, true)
}

func TestSbcHLSetsOverflowOnSignedWraparound(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	res := c.sbcHL(0x8000, 0x0001, 0)
	requireEqualU16(t, "HL", res, 0x7FFF)
	requireFlag(t, c, "PV", FlagPV, true)
	requireFlag(t, c, "N", FlagN, true)
}

func TestDAAAfterAdd(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	rig.load(0x0000, []byte{0x3E, 0x05, 0xC6, 0x03, 0x27, 0x76})
	rig.run(t, 4)
	requireEqualU8(t, "A", c.A, 0x08)
	requireFlag(t, c, "C", FlagC, false)
	requireFlag(t, c, "H", FlagH, false)
	requireFlag(t, c, "N", FlagN, false)
	requireFlag(t, c, "Z", FlagZ, false)
	requireFlag(t, c, "S", FlagS, false)
	requireFlag(t, c, "PV", FlagPV, false)
}

func TestDAAAfterBCDAdditionCarriesTens(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x09
	c.add8(0x09, 0) // 9+9 = 0x12, BCD should read 18
	c.daa()
	requireEqualU8(t, "A", c.A, 0x18)
}

func TestNegComplementsAccumulator(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x01
	c.neg()
	requireEqualU8(t, "A", c.A, 0xFF)
	requireFlag(t, c, "C", FlagC, true)
}

func TestCPLSetsHalfCarryAndSubtract(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.A = 0x0F
	c.cpl()
	requireEqualU8(t, "A", c.A, 0xF0)
	requireFlag(t, c, "H", FlagH, true)
	requireFlag(t, c, "N", FlagN, true)
}

func TestSCFAndCCF(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.scf()
	requireFlag(t, c, "C", FlagC, true)
	c.ccf()
	requireFlag(t, c, "C", FlagC, false)
	requireFlag(t, c, "H", FlagH, true) // CCF copies old carry into H
}

// Package invaders hosts the Space Invaders arcade ROM on top of the cpu
// package: the bit-shifter register, the two 8-bit input-matrix ports,
// and the alternating top/bottom-of-frame vblank interrupts. Grounded in
// emu-pizza's system/space_invaders.c, reworked from SDL2 polling into
// ebiten's Game interface for rendering and input (video.go).
package invaders

import "github.com/z80cabinet/core/cpu"

const (
	romOrigin   = 0x0000
	vramOrigin  = 0x2400
	vramEnd     = 0x4000
	screenWidth = 256
	frameHeight = 224

	cyclesPerFrame = 33333 // ~2MHz / 60Hz
	cyclesPerHalf  = cyclesPerFrame / 2

	interruptMidScreen = 0xCF // RST 1
	interruptVBlank    = 0xD7 // RST 2
)

// inputBits is the Space Invaders port 1/2 bit schema (space_invaders.c):
// coin, start buttons, joystick, fire and tilt. The port 2 DIP switch
// bits are not held here; readPort2 always reports them as 0x03.
type inputBits struct {
	coin, p1Start, p2Start         bool
	p1Fire, p1Left, p1Right        bool
	p2Fire, p2Left, p2Right        bool
	tilt                           bool
}

// Cabinet wires a CPU to the Space Invaders hardware: the shift register
// at OUT 2/4, IN 3, and the port 1/2 input matrix.
type Cabinet struct {
	CPU *cpu.CPU

	shiftHi, shiftLo byte
	shiftOffset      byte

	in inputBits
}

// New loads rom at address 0 (the cabinet's ROM origin) and wires the
// bit-shifter and input-matrix port handlers.
func New(rom []byte) (*Cabinet, error) {
	if len(rom) > vramOrigin {
		// ROM bigger than the space before video RAM would stomp on it.
		rom = rom[:vramOrigin]
	}
	c := &Cabinet{
		CPU: cpu.New(cpu.ModeZ80),
	}
	c.CPU.Load(romOrigin, rom)
	c.CPU.RegisterInHandler(1, c.readPort1)
	c.CPU.RegisterInHandler(2, c.readPort2)
	c.CPU.RegisterInHandler(3, c.readShift)
	c.CPU.RegisterOutHandler(2, c.writeShiftOffset)
	c.CPU.RegisterOutHandler(3, func(uint16, byte) {}) // sound, out of scope
	c.CPU.RegisterOutHandler(4, c.writeShiftData)
	c.CPU.RegisterOutHandler(5, func(uint16, byte) {}) // sound, out of scope
	c.CPU.RegisterOutHandler(6, func(uint16, byte) {}) // watchdog/debug strobe, out of scope
	return c, nil
}

func (c *Cabinet) readPort1(uint16) byte {
	var v byte = 0x08 // bit 3 always reads 1 on real hardware
	if !c.in.coin {
		v |= 0x01 // active low
	}
	if c.in.p2Start {
		v |= 0x02
	}
	if c.in.p1Start {
		v |= 0x04
	}
	if c.in.p1Fire {
		v |= 0x10
	}
	if c.in.p1Left {
		v |= 0x20
	}
	if c.in.p1Right {
		v |= 0x40
	}
	return v
}

func (c *Cabinet) readPort2(uint16) byte {
	var v byte = 0x03 // 3 ships, bonus life at 1000 (matches space_invaders.c's "z80_state->a = 0x03")
	if c.in.tilt {
		v |= 0x04
	}
	if c.in.p2Fire {
		v |= 0x10
	}
	if c.in.p2Left {
		v |= 0x20
	}
	if c.in.p2Right {
		v |= 0x40
	}
	return v
}

func (c *Cabinet) readShift(uint16) byte {
	word := uint16(c.shiftHi)<<8 | uint16(c.shiftLo)
	return byte(word >> (8 - c.shiftOffset))
}

func (c *Cabinet) writeShiftOffset(_ uint16, v byte) {
	c.shiftOffset = v & 0x07
}

func (c *Cabinet) writeShiftData(_ uint16, v byte) {
	c.shiftLo = c.shiftHi
	c.shiftHi = v
}

// SetInput updates one named input line. Recognised names: "coin",
// "p1start", "p2start", "p1fire", "p1left", "p1right", "p2fire",
// "p2left", "p2right", "tilt".
func (c *Cabinet) SetInput(name string, pressed bool) {
	switch name {
	case "coin":
		c.in.coin = pressed
	case "p1start":
		c.in.p1Start = pressed
	case "p2start":
		c.in.p2Start = pressed
	case "p1fire":
		c.in.p1Fire = pressed
	case "p1left":
		c.in.p1Left = pressed
	case "p1right":
		c.in.p1Right = pressed
	case "p2fire":
		c.in.p2Fire = pressed
	case "p2left":
		c.in.p2Left = pressed
	case "p2right":
		c.in.p2Right = pressed
	case "tilt":
		c.in.tilt = pressed
	}
}

// RunFrame advances the CPU through one 60Hz video frame, delivering the
// mid-screen and vblank RST interrupts at their conventional points —
// real Space Invaders hardware interrupts twice per frame so sprite
// updates near the middle of the screen don't tear (spec.md step 5: "If
// an external interrupt is pending AND IFF is set, execute an RST to the
// pending vector").
func (c *Cabinet) RunFrame() error {
	if err := c.runFor(cyclesPerHalf); err != nil {
		return err
	}
	c.CPU.RequestInterrupt(interruptMidScreen)
	if err := c.runFor(cyclesPerHalf); err != nil {
		return err
	}
	c.CPU.RequestInterrupt(interruptVBlank)
	return nil
}

func (c *Cabinet) runFor(cycles uint64) error {
	target := c.CPU.Cycles + cycles
	for c.CPU.Cycles < target {
		if _, err := c.CPU.Step(); err != nil {
			return err
		}
	}
	return nil
}

// VRAM returns the 0x2400-0x3FFF video RAM span the display reads every
// frame.
func (c *Cabinet) VRAM() []byte {
	return c.CPU.Mem.Addr(vramOrigin, vramEnd-vramOrigin)
}

package cpu

// Memory is a flat, byte-addressable 64 KiB address space. Address
// arithmetic wraps mod 65536 because addresses are carried in uint16;
// there are no faults, no paging and no mirrors — a collaborator such as
// the Space Invaders shell that wants mirrored VRAM interprets address
// bits itself on top of this.
type Memory struct {
	bytes [65536]byte
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) byte {
	return m.bytes[addr]
}

// Write8 stores value at addr.
func (m *Memory) Write8(addr uint16, value byte) {
	m.bytes[addr] = value
}

// Read16 returns the little-endian word at addr, addr+1.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m.bytes[addr])
	hi := uint16(m.bytes[addr+1])
	return lo | hi<<8
}

// Write16 stores value little-endian at addr, addr+1.
func (m *Memory) Write16(addr uint16, value uint16) {
	m.bytes[addr] = byte(value)
	m.bytes[addr+1] = byte(value >> 8)
}

// Load copies bytes into memory starting at base. Bytes that would land
// past 0xFFFF are silently dropped to mirror the wraparound address
// arithmetic used everywhere else; callers that care should check
// len(bytes) against 0x10000-base themselves (the diag loader does and
// reports a load-time error; the invaders loader instead cuts the ROM
// off at the start of video RAM without an error).
func (m *Memory) Load(base uint16, bytes []byte) {
	for i, b := range bytes {
		addr := int(base) + i
		if addr > 0xFFFF {
			break
		}
		m.bytes[addr] = b
	}
}

// Addr borrows a contiguous span of memory starting at addr, length n,
// for collaborators that need to read a run of bytes directly without
// copying — the Space Invaders cabinet uses this for its video RAM
// window.
func (m *Memory) Addr(addr uint16, n int) []byte {
	end := int(addr) + n
	if end > 0x10000 {
		end = 0x10000
	}
	return m.bytes[addr:end]
}

// Reset zeroes the entire address space.
func (m *Memory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

package m68k

// eaCycles is the shared EA timing lookup behind eaFetchCycles/eaWriteCycles
// (PRM Table 8-1). The two differ only in the cost of -(An) (fetch reads and
// decrements; write just decrements and stores) and in which mode 7 forms
// are valid as a destination at all.
func eaCycles(mode, reg uint8, sz Size, write bool) uint64 {
	var base uint64
	switch mode {
	case 0, 1: // Dn, An
		base = 0
	case 2, 3: // (An), (An)+
		base = 4
	case 4: // -(An)
		if write {
			base = 4
		} else {
			base = 6
		}
	case 5: // d16(An)
		base = 8
	case 6: // d8(An,Xn)
		base = 10
	case 7:
		switch reg {
		case 0: // abs.W
			base = 8
		case 1: // abs.L
			base = 12
		case 2: // d16(PC), source-only
			if !write {
				base = 8
			}
		case 3: // d8(PC,Xn), source-only
			if !write {
				base = 10
			}
		case 4: // #imm, source-only
			if !write {
				base = 4
			}
		}
	}
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}

// eaFetchCycles returns the source operand EA timing (PRM Table 8-1).
// For register-direct modes (Dn, An) returns 0.
// For memory/immediate modes returns the fetch cost.
// Long adds 4 to all non-zero values.
func eaFetchCycles(mode, reg uint8, sz Size) uint64 {
	return eaCycles(mode, reg, sz, false)
}

// eaWriteCycles returns the destination EA write timing.
// Same as eaFetchCycles except -(An) costs 4 (not 6), and PC-relative/
// immediate forms (source-only addressing) cost 0 since they can never
// appear as a write destination.
func eaWriteCycles(mode, reg uint8, sz Size) uint64 {
	return eaCycles(mode, reg, sz, true)
}

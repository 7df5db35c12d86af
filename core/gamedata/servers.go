package gamedata

// HomeHostname is the player's own machine, sorted first in every
// server listing.
const HomeHostname = "home"

// MaxCores is the hardware cap on cpu cores per server.
const MaxCores = 8

// MinCores is the lower bound on cpu cores per server.
const MinCores = 1

// MaxRAM is the largest purchasable RAM size (2^20 GB).
const MaxRAM = 1 << 20

// ClampCores clamps a cpu core count to [MinCores, MaxCores].
func ClampCores(cores int) int {
	if cores < MinCores {
		return MinCores
	}
	if cores > MaxCores {
		return MaxCores
	}
	return cores
}

// ClampRAM snaps a RAM value to the fixed power-of-two table
// [1, MaxRAM]. Values below one round up; everything else rounds down
// to the nearest power of two.
func ClampRAM(ram float64) float64 {
	if ram <= 1 {
		return 1
	}
	snapped := float64(1)
	for snapped*2 <= ram && snapped*2 <= MaxRAM {
		snapped *= 2
	}
	return snapped
}

// ExploitEditSaveFile is the marker appended to the player's exploit
// flags when a save passes through the editor. It is applied before
// the baseline clone is taken, so reverting never strips it.
const ExploitEditSaveFile = "EditSaveFile"

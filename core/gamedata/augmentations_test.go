package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependents(t *testing.T) {
	deps := Dependents("Augmented Targeting I")
	assert.Contains(t, deps, "Augmented Targeting II")
	assert.Contains(t, deps, "Augmented Targeting III")

	assert.Empty(t, Dependents(NeuroFluxGovernor))
	assert.Empty(t, Dependents("No Such Augmentation"))
}

func TestAugmentationNamesExcludesLeveled(t *testing.T) {
	assert.NotContains(t, AugmentationNames(), NeuroFluxGovernor)
	assert.Contains(t, AugmentationNames(), "BitWire")
}

package gamedata

// NeuroFluxGovernor is the one leveled augmentation. Its installed and
// queued representation uses record multiplicity instead of a single
// level field, so it is handled separately everywhere.
const NeuroFluxGovernor = "NeuroFlux Governor"

// Augmentation is one static catalog entry. Prereqs lists the names
// that must be at least as progressed as this augmentation; the
// mutation cascade consumes them.
type Augmentation struct {
	Name    string
	Prereqs []string
}

// Augmentations is the closed catalog of known augmentation names.
var Augmentations = []Augmentation{
	{Name: "Augmented Targeting I"},
	{Name: "Augmented Targeting II", Prereqs: []string{"Augmented Targeting I"}},
	{Name: "Augmented Targeting III", Prereqs: []string{"Augmented Targeting II", "Augmented Targeting I"}},
	{Name: "BitWire"},
	{Name: "CashRoot Starter Kit"},
	{Name: "Combat Rib I"},
	{Name: "Combat Rib II", Prereqs: []string{"Combat Rib I"}},
	{Name: "Combat Rib III", Prereqs: []string{"Combat Rib II", "Combat Rib I"}},
	{Name: "Cranial Signal Processors - Gen I"},
	{Name: "Cranial Signal Processors - Gen II", Prereqs: []string{"Cranial Signal Processors - Gen I"}},
	{Name: "Cranial Signal Processors - Gen III", Prereqs: []string{"Cranial Signal Processors - Gen II"}},
	{Name: "Cranial Signal Processors - Gen IV", Prereqs: []string{"Cranial Signal Processors - Gen III"}},
	{Name: "Cranial Signal Processors - Gen V", Prereqs: []string{"Cranial Signal Processors - Gen IV"}},
	{Name: "Embedded Netburner Module"},
	{Name: "Embedded Netburner Module Core Implant", Prereqs: []string{"Embedded Netburner Module"}},
	{Name: "Embedded Netburner Module Core V2 Upgrade", Prereqs: []string{"Embedded Netburner Module Core Implant"}},
	{Name: "Embedded Netburner Module Core V3 Upgrade", Prereqs: []string{"Embedded Netburner Module Core V2 Upgrade"}},
	{Name: "Enhanced Social Interaction Implant"},
	{Name: "Neural-Retention Enhancement"},
	{Name: "Neuralstimulator"},
	{Name: "Neurotrainer I"},
	{Name: "Neurotrainer II", Prereqs: []string{"Neurotrainer I"}},
	{Name: "Neurotrainer III", Prereqs: []string{"Neurotrainer II"}},
	{Name: "Synaptic Enhancement Implant"},
	{Name: "Wired Reflexes"},
	{Name: NeuroFluxGovernor},
}

// AugmentationNames returns the ordinary (non-leveled) catalog names.
func AugmentationNames() []string {
	names := make([]string, 0, len(Augmentations)-1)
	for _, aug := range Augmentations {
		if aug.Name == NeuroFluxGovernor {
			continue
		}
		names = append(names, aug.Name)
	}
	return names
}

// Dependents returns the catalog names whose prerequisite list
// includes name.
func Dependents(name string) []string {
	var out []string
	for _, aug := range Augmentations {
		for _, prereq := range aug.Prereqs {
			if prereq == name {
				out = append(out, aug.Name)
				break
			}
		}
	}
	return out
}

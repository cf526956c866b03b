package grid

import (
	"path/filepath"

	"golang.org/x/exp/slices"
)

// Literal values of the paper's experiments.
var (
	AblationShapes    = []string{"sphere", "torus", "snake"}
	AblationMaterials = []string{"diffuse", "diffuse_bump", "thin_film_bump", "multilayered"}

	AppearanceIORs        = []string{"1.0", "2.0"}
	AppearanceThicknesses = []string{"300", "600", "1200"}
)

// Default scene locations, relative to the repository root.
const (
	DefaultAblationSceneFolder = "./scenes/fig6"
	DefaultAppearanceSceneFile = "./scenes/fig5/fig5_snake.xml"
)

// Ablation returns the Figure 6 experiment: every material rendered on every
// shape. Scenes are read from sceneFolder/fig6_<shape>.xml.
func Ablation(sceneFolder string) *Experiment {
	return &Experiment{
		Name:   "fig6",
		Title:  "Fig 6",
		Prefix: "fig6",
		Scene:  filepath.Join(sceneFolder, "fig6_{shape}.xml"),
		Dimensions: []Dimension{
			{Name: "shape", Values: slices.Clone(AblationShapes)},
			{Name: "material", Define: "material", Values: slices.Clone(AblationMaterials)},
		},
		FileOrder: []string{"material", "shape"},
	}
}

// AppearanceRange returns the Figure 5 experiment: the interior index of
// refraction against the film thickness of the snake skin BSDF.
func AppearanceRange(sceneFile string) *Experiment {
	return &Experiment{
		Name:   "fig5",
		Title:  "Fig 5",
		Prefix: "fig5",
		Scene:  sceneFile,
		Dimensions: []Dimension{
			{Name: "intIOR", Label: "eta2", Define: "intIOR", Values: slices.Clone(AppearanceIORs)},
			{Name: "thickness", Label: "thickness", Define: "thickness", Values: slices.Clone(AppearanceThicknesses)},
		},
	}
}

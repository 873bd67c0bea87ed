package mesh

import (
	"marsrover/internal/scene"
)

// Library builds every mesh the scene can ask for, indexed by scene.MeshID.
func Library(seed uint64) [scene.MeshCount]*Mesh {
	var lib [scene.MeshCount]*Mesh

	sky := Sphere(24, 48)
	sky.FlipWinding()

	lib[scene.MeshSphere] = Sphere(16, 32)
	lib[scene.MeshSkySphere] = sky
	lib[scene.MeshCube] = Cube()
	lib[scene.MeshSquare2D] = Square()
	lib[scene.MeshTerrain] = Terrain(seed, TerrainResolution)
	lib[scene.MeshCrystal] = Crystal()
	lib[scene.MeshCrystalBroken] = BrokenCrystal()
	lib[scene.MeshBase] = BasePlatform()
	lib[scene.MeshBaseMiddle] = Dome(12, 32)
	lib[scene.MeshRoverBody] = RoverBody()
	lib[scene.MeshRoverSolarPanels] = SolarPanels()
	lib[scene.MeshRoverWheelLeft] = Wheel(-1)
	lib[scene.MeshRoverWheelRight] = Wheel(1)
	lib[scene.MeshRoverRadio] = Radio()
	return lib
}

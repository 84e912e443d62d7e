package game

import "github.com/catanserver/server/internal/wire"

// Build costs (§3). Declared once here rather than scattered through the
// predicates that check them.
var (
	costRoad       = resSet(1, 0, 0, 0, 1) // clay, wood
	costSettlement = resSet(1, 0, 1, 1, 1) // clay, sheep, wheat, wood
	costCity       = resSet(0, 3, 0, 2, 0) // 3 ore, 2 wheat
	costShip       = resSet(0, 0, 1, 0, 1) // sheep, wood
	costDevCard    = resSet(0, 1, 1, 1, 0) // ore, sheep, wheat
)

func resSet(clay, ore, sheep, wheat, wood int) wire.ResourceSet {
	var rs wire.ResourceSet
	rs[wire.CLAY] = clay
	rs[wire.ORE] = ore
	rs[wire.SHEEP] = sheep
	rs[wire.WHEAT] = wheat
	rs[wire.WOOD] = wood
	return rs
}

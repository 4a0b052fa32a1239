package parameter

// Floor Generation
const (
	// RoomPlacementAttempts is the number of random room placements tried per floor
	RoomPlacementAttempts = 200

	// DungeonExtent bounds room centers to [-extent, extent] on both axes
	DungeonExtent = 30

	// RoomRadiusMin and RoomRadiusMax bound room half-size, max exclusive
	RoomRadiusMin = 2
	RoomRadiusMax = 8

	// StartingRoomRadius is the half-size of the room at the origin
	StartingRoomRadius = 3

	// RoomGapMin and RoomGapMax bound the random required gap between rooms, max exclusive
	RoomGapMin = 3
	RoomGapMax = 10
)

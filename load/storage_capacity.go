package load

// StorageCapacity estimates how much product the room holds.
type StorageCapacity struct {
	MaxStorageCapacity float64 `json:"maxStorageCapacity"` // kg
	StorageUtilization float64 `json:"storageUtilization"` // %
}

/*
Estimate the storage capacity of the room.

	Args:
		volume: room volume, m3
		p: stored product
		storageFactor: packing method multiplier, -
		dailyLoad: product brought in per day, kg/day
	Returns:
		maximum storage capacity, kg, and the daily load as a share of it, %
	Notes:
		The utilization is not clamped; a value above 100 means the daily load
		exceeds what the room can hold.
*/
func getStorageCapacity(volume float64, p Product, storageFactor float64, dailyLoad float64) StorageCapacity {
	maxCapacity := volume * p.Density * p.StorageEfficiency * storageFactor
	return StorageCapacity{
		MaxStorageCapacity: maxCapacity,
		StorageUtilization: dailyLoad / maxCapacity * 100,
	}
}

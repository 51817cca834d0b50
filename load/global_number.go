package load

// Ton of refrigeration, kW
const kwPerTon = 3.517

// Hour-based scale shared by the product and infiltration models
const hourScale = 3.6

// Hours in a day, h
const hoursPerDay = 24.0

// W per kW
const wattsPerKilowatt = 1000.0

// Door-opening mixing coefficient, -
const doorMixingCoefficient = 3.0

// U-factor used when the insulation type or thickness is not in the table, W/m2 K
// Represents a mid-quality insulated wall.
const defaultUFactor = 0.25

// Air change rate category for a cold room
const coldRoomCategory = "coldRoom"

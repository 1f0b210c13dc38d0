package game

import "image/color"

// Colours carried by explosion events. The presentation layer decides how
// they are drawn.
var (
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{230, 41, 55, 255}
	ColorOrange  = color.RGBA{255, 161, 0, 255}
	ColorSkyBlue = color.RGBA{102, 191, 255, 255}
	ColorGold    = color.RGBA{255, 203, 0, 255}
	ColorGreen   = color.RGBA{0, 228, 48, 255}
	ColorPurple  = color.RGBA{200, 122, 255, 255}
	ColorLaser   = color.RGBA{255, 51, 51, 255}
)

// DroneColor returns the body colour for a drone kind.
func DroneColor(kind DroneKind) color.RGBA {
	return GetDroneKindConfig(kind).Color
}

// PowerUpColor returns the colour for a power-up kind.
func PowerUpColor(kind PowerUpKind) color.RGBA {
	switch kind {
	case PowerUpShield:
		return ColorSkyBlue
	case PowerUpLife:
		return ColorGreen
	case PowerUpSlowTime:
		return ColorPurple
	case PowerUpRapidFire:
		return ColorOrange
	default:
		return ColorWhite
	}
}

package sounding

// Shared test profiles. All heights are meters above a 100 m station
// elevation unless noted.

// supercellProfile is an idealized Southern Plains severe-weather sounding:
// moist boundary layer, modest cap, strongly veering flow aloft.
func supercellProfile() Profile {
	return Profile{
		{Pressure: 1000, Height: 100, Temperature: 25, Dewpoint: 21, WindDirection: 160, WindSpeed: 15},
		{Pressure: 950, Height: 550, Temperature: 22, Dewpoint: 19, WindDirection: 180, WindSpeed: 25},
		{Pressure: 900, Height: 990, Temperature: 19, Dewpoint: 17, WindDirection: 190, WindSpeed: 30},
		{Pressure: 850, Height: 1450, Temperature: 17, Dewpoint: 14, WindDirection: 200, WindSpeed: 35},
		{Pressure: 800, Height: 1950, Temperature: 14, Dewpoint: 11, WindDirection: 210, WindSpeed: 40},
		{Pressure: 700, Height: 3050, Temperature: 8, Dewpoint: 2, WindDirection: 220, WindSpeed: 45},
		{Pressure: 600, Height: 4300, Temperature: -1, Dewpoint: -8, WindDirection: 230, WindSpeed: 50},
		{Pressure: 500, Height: 5750, Temperature: -12, Dewpoint: -20, WindDirection: 240, WindSpeed: 55},
		{Pressure: 400, Height: 7400, Temperature: -25, Dewpoint: -35, WindDirection: 250, WindSpeed: 60},
		{Pressure: 300, Height: 9400, Temperature: -42, Dewpoint: -55, WindDirection: 250, WindSpeed: 70},
		{Pressure: 250, Height: 10600, Temperature: -52, Dewpoint: -65, WindDirection: 255, WindSpeed: 75},
		{Pressure: 200, Height: 12100, Temperature: -60, Dewpoint: -75, WindDirection: 260, WindSpeed: 80},
	}
}

// buoyantProfile is a minimal 5-level profile whose surface parcel is warmer
// than the environment at every level: no inhibition anywhere.
func buoyantProfile() Profile {
	return Profile{
		{Pressure: 1000, Height: 0, Temperature: 30, Dewpoint: 20, WindDirection: 180, WindSpeed: 10},
		{Pressure: 950, Height: 450, Temperature: 20, Dewpoint: 12, WindDirection: 180, WindSpeed: 10},
		{Pressure: 900, Height: 900, Temperature: 15, Dewpoint: 8, WindDirection: 180, WindSpeed: 10},
		{Pressure: 850, Height: 1400, Temperature: 10, Dewpoint: 5, WindDirection: 180, WindSpeed: 10},
		{Pressure: 800, Height: 1900, Temperature: 5, Dewpoint: 0, WindDirection: 180, WindSpeed: 10},
	}
}

// uniformWindProfile has identical wind at every level, so every shear
// quantity is exactly zero.
func uniformWindProfile() Profile {
	p := supercellProfile()
	for i := range p {
		p[i].WindDirection = 180
		p[i].WindSpeed = 20
	}
	return p
}

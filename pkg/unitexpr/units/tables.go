package units

// Standard unit tables. Canonical bases are Second, Meter, Gram, Byte,
// Hertz, Ampere, Mole, Kelvin and Candela; everything else derives from one
// of them by an exact decimal factor.
//
// References:
// https://en.wikipedia.org/wiki/International_System_of_Units
// https://en.wikipedia.org/wiki/Orders_of_magnitude_(data)
// https://en.wikipedia.org/wiki/Non-SI_units_mentioned_in_the_SI

func registerStandard(r *Registry) {
	registerTime(r)
	registerLength(r)
	registerMass(r)
	registerData(r)
	registerFrequency(r)
	registerSIBases(r)
}

func registerTime(r *Registry) {
	second := newCanonical("second", "seconds", "s")

	r.Register(second)
	r.Register(newDerived(second, "1e-9", "nanosecond", "nanoseconds", "ns"))
	r.Register(newDerived(second, "1e-6", "microsecond", "microseconds", "μs"))
	r.Register(newDerived(second, "1e-3", "millisecond", "milliseconds", "ms"))
	r.Register(newDerived(second, "60", "minute", "minutes", "min"))
	r.Register(newDerived(second, "3600", "hour", "hours", "h"))
	r.Register(newDerived(second, "86400", "day", "days", "d"))
	r.Register(newDerived(second, "604800", "week", "weeks", "w"))
	r.Register(newDerived(second, "1209600", "fortnight", "fortnights", ""))
	// (30 * 24 + 10.5) * 3600
	r.Register(newDerived(second, "2629800", "month", "months", ""))
	r.Register(newDerived(second, "31536000", "year", "years", ""))
	// 365.25 * 24 * 3600
	r.Register(newDerived(second, "31557600", "common year", "common years", "cy"))
	r.Register(newDerived(second, "315360000", "decade", "decades", ""))
	r.Register(newDerived(second, "3153600000", "century", "centuries", ""))
}

func registerLength(r *Registry) {
	meter := newCanonical("meter", "meters", "m")

	r.Register(newDerived(meter, "1e-12", "picometer", "picometers", "pm"))
	r.Register(newDerived(meter, "1e-9", "nanometer", "nanometers", "nm"))
	r.Register(newDerived(meter, "1e-6", "micrometer", "micrometers", "µm"))
	r.Register(newDerived(meter, "1e-3", "millimeter", "millimeters", "mm"))
	r.Register(newDerived(meter, "1e-2", "centimeter", "centimeters", "cm"))
	r.Register(newDerived(meter, "1e-1", "decimeter", "decimeters", "dm"))
	r.Register(meter)
	r.Register(newDerived(meter, "1e+1", "decameter", "decameters", "dam"))
	r.Register(newDerived(meter, "1e+2", "hectometer", "hectometers", "hm"))
	r.Register(newDerived(meter, "1e+3", "kilometer", "kilometers", "km"))
	r.Register(newDerived(meter, "1e+6", "megameter", "megameters", "Mm"))
	r.Register(newDerived(meter, "1e+9", "gigameter", "gigameters", "Gm"))
	r.Register(newDerived(meter, "1e+12", "terameter", "terameters", "Tm"))

	r.Register(newDerived(meter, "0.0254", "inch", "inches", "in", `"`, "″"))
	r.Register(newDerived(meter, "0.3048", "foot", "feet", "ft", "'", "′"))
	r.Register(newDerived(meter, "0.9144", "yard", "yards", "yd"))
	r.Register(newDerived(meter, "1609.34", "mile", "miles", "mile"))
	r.Register(newDerived(meter, "1852", "nautical mile", "nautical miles", "M"))
}

func registerMass(r *Registry) {
	gram := newCanonical("gram", "grams", "g")

	r.Register(newDerived(gram, "1e-12", "picogram", "picograms", "pg"))
	r.Register(newDerived(gram, "1e-9", "nanogram", "nanograms", "ng"))
	r.Register(newDerived(gram, "1e-6", "microgram", "micrograms", "µg"))
	r.Register(newDerived(gram, "1e-3", "milligram", "milligrams", "mg"))
	r.Register(newDerived(gram, "1e-2", "centigram", "centigrams", "cg"))
	r.Register(newDerived(gram, "1e-1", "decigram", "decigrams", "dg"))
	r.Register(gram)
	r.Register(newDerived(gram, "1e+1", "decagram", "decagrams", "dag"))
	r.Register(newDerived(gram, "1e+2", "hectogram", "hectograms", "hg"))
	r.Register(newDerived(gram, "1e+3", "kilogram", "kilograms", "kg"))
	r.Register(newDerived(gram, "1e+6", "megagram", "megagrams", "Mg"))
	r.Register(newDerived(gram, "1e+9", "gigagram", "gigagrams", "Gg"))
	r.Register(newDerived(gram, "1e+12", "teragram", "teragrams", "Tg"))

	r.Register(newDerived(gram, "1e+6", "tonne", "tonnes", "t"))
	r.Register(newDerived(gram, "1e+9", "kilotonne", "kilotonnes", "kt"))
	r.Register(newDerived(gram, "1e+12", "megatonne", "megatonnes", "Mt"))
	r.Register(newDerived(gram, "1e+15", "gigatonne", "gigatonnes", "Gt"))

	r.Register(newDerived(gram, "453.59265", "pound", "pounds", "lb"))
	r.Register(newDerived(gram, "28.349523125", "ounce", "ounces", "oz"))
}

func registerData(r *Registry) {
	byteUnit := newCanonical("byte", "bytes", "B")

	r.Register(byteUnit)
	r.Register(newDerived(byteUnit, "0.125", "bit", "bits", "bit"))
	r.Register(newDerived(byteUnit, "1024", "kilobyte", "kilobytes", "kB"))
	r.Register(newDerived(byteUnit, "1024e3", "megabyte", "megabytes", "MB"))
	r.Register(newDerived(byteUnit, "1024e6", "gigabyte", "gigabytes", "GB"))
	r.Register(newDerived(byteUnit, "1024e9", "terabyte", "terabytes", "TB"))
	r.Register(newDerived(byteUnit, "1024e12", "petabyte", "petabytes", "PB"))
	r.Register(newDerived(byteUnit, "1024e15", "exabyte", "exabytes", "EB"))
	r.Register(newDerived(byteUnit, "1024e18", "zettabyte", "zettabytes", "ZB"))
}

func registerFrequency(r *Registry) {
	hertz := newCanonical("hertz", "hertz", "Hz")

	r.Register(newDerived(hertz, "1e-12", "picohertz", "picohertz", "pHz"))
	r.Register(newDerived(hertz, "1e-9", "nanohertz", "nanohertz", "nHz"))
	r.Register(newDerived(hertz, "1e-6", "microhertz", "microhertz", "µHz"))
	r.Register(newDerived(hertz, "1e-3", "millihertz", "millihertz", "mHz"))
	r.Register(newDerived(hertz, "1e-2", "centihertz", "centihertz", "cHz"))
	r.Register(newDerived(hertz, "1e-1", "decihertz", "decihertz", "dHz"))
	r.Register(hertz)
	r.Register(newDerived(hertz, "1e+1", "decahertz", "decahertz", "daHz"))
	r.Register(newDerived(hertz, "1e+2", "hectohertz", "hectohertz", "hHz"))
	r.Register(newDerived(hertz, "1e+3", "kilohertz", "kilohertz", "kHz"))
	r.Register(newDerived(hertz, "1e+6", "megahertz", "megahertz", "MHz"))
	r.Register(newDerived(hertz, "1e+9", "gigahertz", "gigahertz", "GHz"))
	r.Register(newDerived(hertz, "1e+12", "terahertz", "terahertz", "THz"))
}

func registerSIBases(r *Registry) {
	r.Register(newCanonical("ampere", "amperes", "A"))
	r.Register(newCanonical("mole", "moles", "mol"))
	r.Register(newCanonical("kelvin", "kelvins", "K"))
	r.Register(newCanonical("candela", "candelas", "cd"))
}

package galaxy

func init() {
	a = buildAtlas(seedBodies)
	if err := Validate(); err != nil {
		panic(err)
	}
}

var seedBodies = []CelestialBody{
	{
		ID:          "sol",
		Name:        "The Sun",
		Subject:     SubjectPhysics,
		Type:        TypeStar,
		Description: "Our star, the engine of the solar system. The journey starts here.",
		Summary:     "Nuclear fusion turns hydrogen into helium, releasing the energy that powers the solar system.",
		Unlocks:     "mercury",
		Content: "The Sun is a main-sequence star that holds 99.8% of the solar system's mass. " +
			"In its core, temperatures near 15 million °C force hydrogen nuclei to fuse into helium. " +
			"Each fusion reaction converts a tiny amount of mass directly into energy, exactly as " +
			"Einstein's E=mc² predicts.\n\n" +
			"That energy takes thousands of years to work its way from the core to the surface, " +
			"then just over eight minutes to reach Earth as light. Without this steady output there " +
			"would be no photosynthesis, no weather, and no liquid water on our planet.\n\n" +
			"The Sun also streams charged particles outward as the solar wind. When those particles " +
			"strike Earth's magnetic field they light up the sky as auroras.",
	},
	{
		ID:          "mercury",
		Name:        "Mercury",
		Subject:     SubjectPhysics,
		Type:        TypeTerrestrial,
		Description: "The smallest planet, racing around the Sun in just 88 days.",
		Summary:     "Mercury shows how orbital speed and the lack of an atmosphere shape a planet's extremes.",
		Unlocks:     "venus",
		Content: "Mercury is the innermost planet and the fastest, completing an orbit every 88 Earth " +
			"days. Kepler's laws explain why: the closer a planet sits to the Sun, the stronger the " +
			"gravitational pull and the faster it must travel to stay in orbit.\n\n" +
			"With almost no atmosphere to trap heat, Mercury swings between roughly 430 °C in " +
			"daylight and -180 °C at night, the widest temperature range of any planet. An " +
			"atmosphere acts like a blanket, and Mercury never had one thick enough to keep.\n\n" +
			"Its surface is covered in impact craters, a record of collisions preserved for billions " +
			"of years because there is no wind or rain to erase them.",
	},
	{
		ID:          "venus",
		Name:        "Venus",
		Subject:     SubjectChemistry,
		Type:        TypeTerrestrial,
		Description: "Earth's twin in size, but a chemical furnace in disguise.",
		Summary:     "A runaway greenhouse effect driven by carbon dioxide makes Venus hotter than Mercury.",
		Unlocks:     "earth",
		Content: "Venus is nearly the same size as Earth, yet its surface is hot enough to melt lead. " +
			"The culprit is chemistry: an atmosphere of about 96% carbon dioxide traps infrared " +
			"radiation in a runaway greenhouse effect, holding the surface near 465 °C day and night.\n\n" +
			"High in the Venusian clouds, sulfur dioxide reacts with water vapor to form droplets of " +
			"sulfuric acid. Rain falls, but evaporates in the heat before ever reaching the ground.\n\n" +
			"Venus is a natural laboratory for studying how greenhouse gases behave, and a warning " +
			"about what happens when a planet's carbon cycle breaks down.",
	},
	{
		ID:          "earth",
		Name:        "Earth",
		Subject:     SubjectBiology,
		Type:        TypeTerrestrial,
		Description: "The only world known to host life.",
		Summary:     "Liquid water, a protective atmosphere, and billions of years of evolution make Earth unique.",
		Unlocks:     "moon",
		Content: "Earth sits in the habitable zone, the narrow band around a star where liquid water " +
			"can persist on a planet's surface. Water is the solvent of life: every known living cell " +
			"depends on it to move nutrients and carry out chemical reactions.\n\n" +
			"Life appeared in Earth's oceans over 3.5 billion years ago as single-celled organisms. " +
			"Photosynthetic microbes slowly filled the atmosphere with oxygen, transforming the " +
			"planet and making complex animal life possible.\n\n" +
			"Today every organism, from bacteria to blue whales, shares the same genetic code, " +
			"evidence that all life on Earth descends from a common ancestor.",
	},
	{
		ID:          "moon",
		Name:        "The Moon",
		Subject:     SubjectPhysics,
		Type:        TypeMoon,
		Description: "Earth's constant companion and the driver of the tides.",
		Summary:     "The Moon's gravity raises Earth's tides and stabilizes the tilt of its axis.",
		Unlocks:     "mars",
		Content: "The Moon formed about 4.5 billion years ago, most likely from debris thrown into " +
			"orbit when a Mars-sized body collided with the young Earth. It is slowly drifting away " +
			"from us, about 3.8 centimeters per year.\n\n" +
			"The Moon's gravity pulls hardest on the side of Earth facing it, stretching the oceans " +
			"into two bulges. As Earth rotates through those bulges, coastlines experience two high " +
			"tides and two low tides each day.\n\n" +
			"The Moon also steadies Earth's axial tilt. Without it, the tilt would wobble " +
			"chaotically over millions of years, and with it the climate.",
	},
	{
		ID:          "mars",
		Name:        "Mars",
		Subject:     SubjectChemistry,
		Type:        TypeTerrestrial,
		Description: "The red planet, painted by rust.",
		Summary:     "Iron oxide colors Mars red, and mineral evidence shows water once flowed there.",
		Unlocks:     "jupiter",
		Content: "Mars owes its color to chemistry. Its soil is rich in iron, and over billions of " +
			"years that iron reacted with oxygen to form iron oxide, the same compound as common " +
			"rust. Fine red dust now coats the entire planet.\n\n" +
			"Dry riverbeds, layered sediments, and minerals like clays and sulfates that only form " +
			"in water all point to a wetter past. Today most Martian water is locked up as ice at " +
			"the poles and underground.\n\n" +
			"The thin carbon dioxide atmosphere, about 1% as dense as Earth's, cannot hold heat or " +
			"shield the surface, which is why rovers rather than people explore Mars first.",
	},
	{
		ID:          "jupiter",
		Name:        "Jupiter",
		Subject:     SubjectPhysics,
		Type:        TypeGasGiant,
		Description: "The giant of the solar system, more massive than all other planets combined.",
		Summary:     "Jupiter's immense gravity shapes the solar system and shelters the inner planets.",
		Content: "Jupiter is a gas giant with no solid surface, composed mostly of hydrogen and " +
			"helium like a star that never grew massive enough to ignite. It is so large that more " +
			"than 1,300 Earths would fit inside.\n\n" +
			"Its Great Red Spot is a storm wider than Earth that has raged for at least 350 years. " +
			"With no land below to slow them, Jovian storms can persist for centuries.\n\n" +
			"Jupiter's gravity acts as the solar system's shield, deflecting or capturing comets " +
			"and asteroids that might otherwise strike the inner planets. Its four largest moons, " +
			"discovered by Galileo in 1610, were the first objects ever observed orbiting another world.",
	},
	{
		ID:          "saturn",
		Name:        "Saturn",
		Subject:     SubjectPhysics,
		Type:        TypeGasGiant,
		Description: "The ringed jewel of the solar system.",
		Summary:     "Saturn's rings are countless ice fragments held in a disk by gravity and collisions.",
		Content: "Saturn's rings look solid from Earth, but they are billions of chunks of water ice " +
			"ranging from dust grains to house-sized boulders, each on its own orbit. The entire " +
			"system spans 280,000 kilometers yet averages only about ten meters thick.\n\n" +
			"Saturn is the least dense planet, lighter than water. Like Jupiter it is mostly " +
			"hydrogen and helium, with winds that reach 1,800 kilometers per hour.\n\n" +
			"Its moon Titan has lakes of liquid methane and a thick nitrogen atmosphere, making it " +
			"one of the most intriguing places to search for exotic chemistry.",
	},
	{
		ID:          "uranus",
		Name:        "Uranus",
		Subject:     SubjectPhysics,
		Type:        TypeIceGiant,
		Description: "The sideways planet, rolling around the Sun on its side.",
		Summary:     "A tilt of 98 degrees gives Uranus seasons that last over two decades each.",
		Content: "Uranus rotates on an axis tilted 98 degrees, so it effectively rolls along its " +
			"orbital path. Astronomers suspect an ancient collision with an Earth-sized body " +
			"knocked it over. Each pole gets 42 years of continuous sunlight followed by 42 years " +
			"of darkness.\n\n" +
			"Uranus is an ice giant: beneath its hydrogen-helium outer layer lies a hot, dense " +
			"fluid of water, methane, and ammonia. Methane in the upper atmosphere absorbs red " +
			"light, giving the planet its pale blue-green color.\n\n" +
			"It is also the coldest planetary atmosphere in the solar system, dipping to -224 °C.",
	},
	{
		ID:          "neptune",
		Name:        "Neptune",
		Subject:     SubjectPhysics,
		Type:        TypeIceGiant,
		Description: "The windiest world, found by mathematics before telescopes.",
		Summary:     "Neptune was predicted from Uranus's orbit, a triumph of Newtonian gravity.",
		Content: "Neptune is the only planet discovered by calculation. Astronomers noticed Uranus " +
			"drifting off its predicted orbit and reasoned that an unseen planet's gravity was " +
			"tugging it. In 1846 Neptune was found within a degree of where the mathematics said " +
			"to look.\n\n" +
			"Despite receiving little sunlight, Neptune hosts the fastest winds in the solar " +
			"system, over 2,000 kilometers per hour, driven by heat escaping from its interior.\n\n" +
			"Its largest moon, Triton, orbits backwards relative to Neptune's rotation, a strong " +
			"hint that it is a captured object from the Kuiper belt.",
	},
}

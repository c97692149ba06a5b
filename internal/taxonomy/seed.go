package taxonomy

type seedMove struct {
	name string
	area BodyArea
}

// moveSeed is the static move catalog; loaded once on startup and
// upserted idempotently by key.
var moveSeed = []seedMove{
	// Chest
	{"bench press", BodyAreaChest},
	{"barbell bench press", BodyAreaChest},
	{"dumbbell bench press", BodyAreaChest},
	{"incline bench press", BodyAreaChest},
	{"decline bench press", BodyAreaChest},
	{"incline dumbbell press", BodyAreaChest},
	{"decline dumbbell press", BodyAreaChest},
	{"machine chest press", BodyAreaChest},
	{"chest press", BodyAreaChest},
	{"smith machine bench press", BodyAreaChest},
	{"push up", BodyAreaChest},
	{"pushup", BodyAreaChest},
	{"weighted push up", BodyAreaChest},
	{"chest dip", BodyAreaChest},
	{"dips", BodyAreaChest},
	{"cable fly", BodyAreaChest},
	{"cable crossover", BodyAreaChest},
	{"pec deck", BodyAreaChest},
	{"pec fly", BodyAreaChest},
	{"dumbbell fly", BodyAreaChest},
	{"svend press", BodyAreaChest},
	// Back
	{"pull up", BodyAreaBack},
	{"pullup", BodyAreaBack},
	{"chin up", BodyAreaBack},
	{"lat pulldown", BodyAreaBack},
	{"wide grip lat pulldown", BodyAreaBack},
	{"close grip lat pulldown", BodyAreaBack},
	{"seated cable row", BodyAreaBack},
	{"seated row", BodyAreaBack},
	{"barbell row", BodyAreaBack},
	{"bent over row", BodyAreaBack},
	{"dumbbell row", BodyAreaBack},
	{"single arm dumbbell row", BodyAreaBack},
	{"pendlay row", BodyAreaBack},
	{"t bar row", BodyAreaBack},
	{"inverted row", BodyAreaBack},
	{"chest supported row", BodyAreaBack},
	{"face pull", BodyAreaShoulders},
	{"facepull", BodyAreaShoulders},
	{"straight arm pulldown", BodyAreaBack},
	{"back extension", BodyAreaBack},
	{"hyperextension", BodyAreaBack},
	{"reverse hyper", BodyAreaBack},
	{"good morning", BodyAreaBack},
	{"rack pull", BodyAreaBack},
	{"deadlift", BodyAreaLegs},
	{"sumo deadlift", BodyAreaBack},
	{"romanian deadlift", BodyAreaBack},
	{"rdl", BodyAreaBack},
	// Shoulders
	{"overhead press", BodyAreaShoulders},
	{"shoulder press", BodyAreaShoulders},
	{"barbell overhead press", BodyAreaShoulders},
	{"dumbbell shoulder press", BodyAreaShoulders},
	{"seated dumbbell press", BodyAreaShoulders},
	{"military press", BodyAreaShoulders},
	{"arnold press", BodyAreaShoulders},
	{"push press", BodyAreaShoulders},
	{"landmine press", BodyAreaShoulders},
	{"lateral raise", BodyAreaShoulders},
	{"side lateral raise", BodyAreaShoulders},
	{"front raise", BodyAreaShoulders},
	{"rear delt fly", BodyAreaShoulders},
	{"reverse fly", BodyAreaShoulders},
	{"upright row", BodyAreaShoulders},
	{"cable lateral raise", BodyAreaShoulders},
	{"shrug", BodyAreaShoulders},
	{"dumbbell shrug", BodyAreaShoulders},
	{"barbell shrug", BodyAreaShoulders},
	// Legs
	{"squat", BodyAreaLegs},
	{"back squat", BodyAreaLegs},
	{"front squat", BodyAreaLegs},
	{"high bar squat", BodyAreaLegs},
	{"low bar squat", BodyAreaLegs},
	{"box squat", BodyAreaLegs},
	{"pause squat", BodyAreaLegs},
	{"goblet squat", BodyAreaLegs},
	{"hack squat", BodyAreaLegs},
	{"smith machine squat", BodyAreaLegs},
	{"leg press", BodyAreaLegs},
	{"leg extension", BodyAreaLegs},
	{"leg curl", BodyAreaLegs},
	{"seated leg curl", BodyAreaLegs},
	{"lying leg curl", BodyAreaLegs},
	{"nordic curl", BodyAreaLegs},
	{"walking lunge", BodyAreaLegs},
	{"lunge", BodyAreaLegs},
	{"reverse lunge", BodyAreaLegs},
	{"split squat", BodyAreaLegs},
	{"bulgarian split squat", BodyAreaLegs},
	{"step up", BodyAreaLegs},
	{"pistol squat", BodyAreaLegs},
	{"sissy squat", BodyAreaLegs},
	{"calf raise", BodyAreaLegs},
	{"standing calf raise", BodyAreaLegs},
	{"seated calf raise", BodyAreaLegs},
	{"donkey calf raise", BodyAreaLegs},
	{"adductor machine", BodyAreaLegs},
	{"abductor machine", BodyAreaLegs},
	{"hip adduction", BodyAreaLegs},
	{"hip abduction", BodyAreaLegs},
	{"glute bridge", BodyAreaLegs},
	{"hip thrust", BodyAreaLegs},
	// Arms
	{"barbell curl", BodyAreaArms},
	{"dumbbell curl", BodyAreaArms},
	{"dumbell curl", BodyAreaArms},
	{"curl", BodyAreaArms},
	{"alternating dumbbell curl", BodyAreaArms},
	{"hammer curl", BodyAreaArms},
	{"preacher curl", BodyAreaArms},
	{"incline dumbbell curl", BodyAreaArms},
	{"concentration curl", BodyAreaArms},
	{"cable curl", BodyAreaArms},
	{"ez bar curl", BodyAreaArms},
	{"reverse curl", BodyAreaArms},
	{"tricep pushdown", BodyAreaArms},
	{"triceps pushdown", BodyAreaArms},
	{"pushdown", BodyAreaArms},
	{"rope pushdown", BodyAreaArms},
	{"overhead tricep extension", BodyAreaArms},
	{"overhead triceps extension", BodyAreaArms},
	{"skull crusher", BodyAreaArms},
	{"lying tricep extension", BodyAreaArms},
	{"close grip bench press", BodyAreaArms},
	{"close grip push up", BodyAreaArms},
	{"bench dip", BodyAreaArms},
	{"cable tricep extension", BodyAreaArms},
	{"tricep kickback", BodyAreaArms},
	{"triceps kickback", BodyAreaArms},
	{"wrist curl", BodyAreaArms},
	{"reverse wrist curl", BodyAreaArms},
	{"farmer carry", BodyAreaArms},
	// Core
	{"plank", BodyAreaCore},
	{"side plank", BodyAreaCore},
	{"crunch", BodyAreaCore},
	{"sit up", BodyAreaCore},
	{"v up", BodyAreaCore},
	{"dead bug", BodyAreaCore},
	{"hollow hold", BodyAreaCore},
	{"mountain climber", BodyAreaCore},
	{"russian twist", BodyAreaCore},
	{"hanging leg raise", BodyAreaCore},
	{"leg raise", BodyAreaCore},
	{"ab wheel", BodyAreaCore},
	{"ab rollout", BodyAreaCore},
	{"cable crunch", BodyAreaCore},
	{"pallof press", BodyAreaCore},
	{"wood chop", BodyAreaCore},
	{"back plank", BodyAreaCore},
	{"bird dog", BodyAreaCore},
	{"toes to bar", BodyAreaCore},
	// Full body / athletic
	{"clean", BodyAreaFullBody},
	{"power clean", BodyAreaFullBody},
	{"hang clean", BodyAreaFullBody},
	{"snatch", BodyAreaFullBody},
	{"power snatch", BodyAreaFullBody},
	{"clean and jerk", BodyAreaFullBody},
	{"thruster", BodyAreaFullBody},
	{"burpee", BodyAreaFullBody},
	{"man maker", BodyAreaFullBody},
	{"kettlebell swing", BodyAreaFullBody},
	{"turkish get up", BodyAreaFullBody},
	{"wall ball", BodyAreaFullBody},
	{"sled push", BodyAreaFullBody},
	{"sled pull", BodyAreaFullBody},
	{"bear crawl", BodyAreaFullBody},
	{"battle rope", BodyAreaFullBody},
	// Cardio conditioning
	{"run", BodyAreaCardio},
	{"treadmill run", BodyAreaCardio},
	{"jog", BodyAreaCardio},
	{"sprint", BodyAreaCardio},
	{"bike", BodyAreaCardio},
	{"cycling", BodyAreaCardio},
	{"stationary bike", BodyAreaCardio},
	{"spin bike", BodyAreaCardio},
	{"row", BodyAreaCardio},
	{"rowing", BodyAreaCardio},
	{"erg row", BodyAreaCardio},
	{"jump rope", BodyAreaCardio},
	{"stairmaster", BodyAreaCardio},
	{"elliptical", BodyAreaCardio},
	{"ski erg", BodyAreaCardio},
}

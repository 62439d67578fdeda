package wordlist

import "slices"

// Short returns a copy of the built-in list of common three-to-five letter
// English words, suited to compact passphrases that are quick to type.
func Short() []string {
	return slices.Clone(short)
}

// Memorable returns a copy of the built-in list of longer, concrete English
// words that are easy to picture and therefore easy to remember.
func Memorable() []string {
	return slices.Clone(memorable)
}

// The canonical lists are package-private so callers cannot mutate them;
// the accessors above hand out fresh copies. All entries are lower-case and
// unique within their list, which wordlist tests enforce.

var short = []string{
	"acid", "acorn", "actor", "adapt", "admit", "adobe", "adult", "agent",
	"agree", "ahead", "aide", "alarm", "album", "alert", "alien", "alley",
	"allow", "alpha", "altar", "amber", "amend", "ample", "angel", "anger",
	"angle", "ankle", "annex", "apple", "april", "apron", "arch", "arena",
	"argue", "arise", "armor", "aroma", "array", "arrow", "aspen", "asset",
	"atlas", "atom", "attic", "audio", "auto", "avid", "axis", "bacon",
	"badge", "bagel", "baker", "balmy", "banjo", "basil", "baton", "beach",
	"bead", "beam", "bean", "bear", "beet", "belt", "bench", "berry",
	"bike", "birch", "bird", "bison", "blade", "blank", "blaze", "blend",
	"bliss", "block", "bloom", "blue", "blush", "board", "boat", "bolt",
	"bonus", "book", "boost", "booth", "bound", "bowl", "brave", "bread",
	"brew", "brick", "bride", "brief", "brisk", "broad", "brook", "broom",
	"brown", "brush", "buck", "buddy", "bugle", "bulb", "bulk", "bull",
	"bump", "bunch", "bunny", "burst", "bush", "cabin", "cable", "cadet",
	"cake", "calm", "camel", "cameo", "camp", "canal", "candy", "canoe",
	"cape", "card", "cargo", "carol", "carry", "cart", "carve", "case",
	"cast", "catch", "cause", "cedar", "cello", "chair", "chalk", "chant",
	"charm", "chart", "chase", "chef", "chess", "chest", "chief", "chili",
	"chime", "chin", "chip", "choir", "chop", "chord", "chore", "cider",
	"cinch", "city", "civic", "claim", "clamp", "clash", "clasp", "class",
	"claw", "clay", "clean", "clear", "clerk", "click", "cliff", "climb",
	"cling", "clip", "cloak", "clock", "clone", "cloth", "cloud", "clove",
	"clown", "club", "clue", "coach", "coast", "cobra", "cocoa", "code",
	"coil", "coin", "cold", "colt", "comet", "cone", "coral", "cord",
	"cork", "corn", "couch", "count", "court", "cove", "cozy", "crab",
	"craft", "crane", "crate", "crawl", "creek", "crepe", "crest", "crew",
	"crisp", "crop", "cross", "crow", "crowd", "crown", "crumb", "crush",
	"crust", "cube", "cuff", "curb", "curl", "curve", "cycle", "daily",
	"dairy", "daisy", "dance", "dandy", "dart", "dash", "date", "dawn",
	"deal", "dean", "debit", "debut", "decaf", "deck", "decor", "deed",
	"deer", "delta", "denim", "depot", "derby", "desk", "dial", "diary",
	"dice", "digit", "dime", "diner", "dish", "ditch", "dive", "dock",
	"dodge", "doll", "dome", "donor", "donut", "door", "dose", "dough",
	"dove", "dozen", "draft", "drain", "drama", "draw", "dress", "drift",
	"drill", "drive", "drone", "drop", "drum", "duck", "duet", "dune",
	"dusk", "dust", "duty", "dwarf", "eager", "eagle", "early", "earth",
	"easel", "east", "echo", "edge", "eject", "elbow", "elder", "elk",
	"elm", "elude", "ember", "emit", "empty", "enter", "entry", "envoy",
	"epic", "equal", "erupt", "essay", "evade", "even", "event", "exact",
	"exam", "exit", "fable", "facet", "fact", "fade", "fair", "faith",
	"fall", "fame", "fancy", "fang", "farm", "fast", "fault", "fawn",
	"feast", "fence", "fern", "ferry", "fetch", "fever", "fiber", "field",
	"fifth", "file", "film", "final", "finch", "fire", "first", "fish",
	"fist", "five", "fjord", "flag", "flair", "flake", "flame", "flank",
	"flare", "flash", "flask", "fleet", "flint", "flip", "float", "flock",
	"flora", "floss", "flour", "flow", "fluid", "flute", "foam", "focus",
	"foil", "fold", "folk", "font", "food", "fort", "forum", "found",
	"frame", "fresh", "frog", "front", "frost", "froth", "fruit", "fudge",
	"fuel", "full", "fund", "funny", "fuse", "gain", "gala", "game",
	"gate", "gauge", "gavel", "gear", "gecko", "gene", "genre", "giant",
	"gift", "given", "glad", "glass", "gleam", "glide", "globe", "gloss",
	"glove", "glow", "glue", "goal", "goat", "gold", "golf", "gong",
	"good", "goose", "gourd", "gown", "grace", "grade", "grain", "grand",
	"grant", "grape", "graph", "grasp", "grass", "grave", "gravy", "gray",
	"green", "greet", "grid", "grill", "grin", "grip", "groom", "grove",
	"growl", "guard", "guest", "guide", "guild", "gust", "habit", "hall",
	"halt", "happy", "harp", "hatch", "haven", "hawk", "hazel", "heap",
	"heart", "hedge", "hefty", "herb", "heron", "hill", "hinge", "hint",
	"hippo", "hive", "hobby", "hoist", "home", "honey", "hood", "hoof",
	"hook", "horn", "horse", "hotel", "hound", "house", "hover", "human",
	"humor", "hurry", "husk", "hutch", "icing", "ideal", "idol", "igloo",
	"image", "inch", "index", "inlet", "input", "iron", "issue", "item",
	"ivory", "jazz", "jeep", "jelly", "jewel", "jolly", "judge", "juice",
	"jumbo", "jump", "jury", "kayak", "kazoo", "keen", "ketch", "kilt",
	"king", "kiosk", "kite", "kiwi", "knack", "knee", "knife", "knot",
	"koala", "label", "labor", "lace", "ladle", "lair", "lake", "lamb",
	"lamp", "lance", "land", "lapel", "large", "laser", "latch", "lathe",
	"laugh", "lava", "lawn", "layer", "leaf", "ledge", "lemon", "lens",
	"level", "lever", "light", "lilac", "lily", "limb", "lime", "linen",
	"lion", "liver", "llama", "lobby", "local", "lodge", "loft", "logic",
	"long", "loop", "lotus", "loud", "lucky", "lunar", "lunch", "lyric",
}

var memorable = []string{
	"acoustic", "acrobat", "airship", "almanac", "almond", "anchor", "antenna", "antique",
	"anvil", "apricot", "aquarium", "archway", "armchair", "asteroid", "avocado", "azalea",
	"backpack", "balcony", "ballad", "balloon", "bamboo", "banner", "barrel", "basket",
	"bathtub", "battery", "beacon", "bedrock", "beehive", "bicycle", "biscuit", "blanket",
	"blizzard", "blossom", "blueprint", "bonfire", "bookcase", "boulder", "bouquet", "breeze",
	"brigade", "bronze", "buffalo", "bungalow", "butter", "cabbage", "caboose", "calendar",
	"campfire", "canister", "canyon", "caravan", "carnival", "carousel", "cascade", "castle",
	"catalog", "cattle", "cauldron", "cavern", "cellar", "chapel", "chariot", "checkers",
	"chimney", "chipmunk", "chisel", "chowder", "cinnamon", "citadel", "clarinet", "cobweb",
	"coconut", "compass", "concert", "copper", "cottage", "cougar", "courtyard", "cradle",
	"crayon", "cricket", "crystal", "cupcake", "currant", "cutlass", "cyclone", "daffodil",
	"dagger", "dewdrop", "diamond", "dolphin", "domino", "doorbell", "dragonfly", "driftwood",
	"drumstick", "dumpling", "eclipse", "eggplant", "elephant", "emerald", "engine", "envelope",
	"estuary", "falcon", "feather", "fiddle", "firefly", "fishhook", "flagpole", "flamingo",
	"flannel", "footpath", "fortress", "fountain", "foxglove", "freckle", "frigate", "frontier",
	"galleon", "gazebo", "gazelle", "geyser", "giraffe", "glacier", "goblet", "gondola",
	"granite", "grotto", "hammock", "hamster", "harvest", "hatchet", "haystack", "hazelnut",
	"hedgehog", "helmet", "hillside", "horizon", "hornet", "hydrant", "iceberg", "incense",
	"inkwell", "island", "jackal", "jasmine", "jigsaw", "jubilee", "jukebox", "juniper",
	"kernel", "kettle", "keyhole", "kingdom", "kitten", "lantern", "lasagna", "lighthouse",
	"lumber", "macaroon", "magnet", "mallard", "mango", "mantis", "marble", "meadow",
	"medallion", "melon", "mildew", "minnow", "mirror", "monsoon", "moonbeam", "mosaic",
	"mustang", "napkin", "nectar", "noodle", "nugget", "nutmeg", "oatmeal", "obelisk",
	"octopus", "orchard", "oregano", "ostrich", "otter", "oxcart", "oyster", "paddle",
	"pagoda", "panther", "parasol", "parsley", "pebble", "pelican", "penguin", "peppermint",
	"pinwheel", "pirate", "pistachio", "plank", "plateau", "platypus", "plywood", "pocket",
	"polka", "porridge", "prairie", "pretzel", "pumpkin", "puppet", "pyramid", "quarry",
	"quiver", "raccoon", "rainbow", "rampart", "raspberry", "ravine", "reindeer", "rhubarb",
	"riverbed", "rooster", "rubble", "saddle", "saffron", "sandal", "sapphire", "satchel",
	"sawdust", "saxophone", "scarecrow", "scooter", "seashell", "shamrock", "shingle", "shovel",
	"skillet", "sleigh", "snorkel", "snowdrift", "sparrow", "spatula", "spindle", "sprocket",
	"squirrel", "stairway", "stallion", "stencil", "sundial", "tadpole", "tambourine", "teapot",
	"thimble", "thunder", "timber", "toadstool", "toboggan", "tortoise", "trapeze", "treasure",
	"trellis", "trombone", "trumpet", "tundra", "turnip", "turtle", "twilight", "umbrella",
	"unicorn", "valley", "velvet", "vineyard", "violet", "volcano", "waffle", "wagon",
	"walnut", "walrus", "warbler", "waterfall", "whistle", "wildcat", "windmill", "wombat",
	"woodland", "yonder", "zephyr", "zucchini",
}

package slip39

// wordList is the fixed 1024-entry word dictionary used to encode and
// decode mnemonic shares. Entries are indexed 0-1023 and the list must be
// sorted, since the index of a word within it doubles as a quick
// well-formedness check during decoding.
//
//nolint:gochecknoglobals // fixed dictionary, read-only after init
var wordList = [1024]string{
	"academic", "acid", "acne", "acquire", "acrobat", "activity",
	"actress", "adapt", "adequate", "adjust", "admit", "adorn",
	"adult", "advance", "advocate", "afraid", "again", "agency",
	"agree", "aide", "aircraft", "airline", "airport", "ajar",
	"alarm", "album", "alcohol", "alien", "alive", "alpha",
	"already", "alto", "aluminum", "always", "amazing", "amber",
	"ambition", "amount", "amuse", "analysis", "anatomy", "ancestor",
	"anchor", "ancient", "angel", "angry", "animal", "answer",
	"antenna", "anxiety", "apart", "apron", "aquatic", "arcade",
	"arena", "argue", "armed", "aroma", "artist", "artwork",
	"ashtray", "aspect", "atlas", "attic", "auction", "august",
	"aunt", "aurora", "average", "aviate", "avoid", "award",
	"away", "axis", "axle", "barnyard", "bazaar", "beam",
	"beard", "beaver", "become", "bedroom", "beetle", "behavior",
	"being", "believe", "belong", "benefit", "best", "beyond",
	"bike", "billow", "biology", "birthday", "biscuit", "bishop",
	"black", "blanket", "blaze", "blessing", "blimp", "blind",
	"bloom", "blue", "body", "bolt", "boring", "born",
	"both", "boundary", "bracelet", "branch", "brave", "breathe",
	"briefing", "bright", "bring", "broken", "brother", "browser",
	"bucket", "budget", "building", "bulb", "bullet", "bumpy",
	"bundle", "burden", "burning", "busy", "buyer", "cage",
	"calcium", "camera", "campus", "canyon", "capacity", "capital",
	"capture", "carbon", "cards", "careful", "cargo", "carpet",
	"carve", "category", "center", "ceramic", "champion", "change",
	"charity", "check", "chemical", "chest", "chew", "chubby",
	"cinema", "civil", "class", "clay", "cleanup", "client",
	"climate", "clinic", "clock", "clog", "closet", "clothes",
	"club", "cluster", "coal", "coastal", "coding", "column",
	"company", "corner", "costume", "counter", "course", "cover",
	"cowboy", "cradle", "craft", "crazy", "credit", "cricket",
	"criminal", "crisis", "critical", "crowd", "crucial", "crunch",
	"crush", "crystal", "cubic", "cultural", "curious", "curly",
	"custody", "cylinder", "daisy", "damage", "dance", "darkness",
	"database", "daughter", "deadline", "deal", "debris", "decent",
	"decision", "declare", "decorate", "decrease", "deliver", "demand",
	"density", "deny", "depart", "depend", "depict", "deploy",
	"describe", "desert", "desire", "desktop", "destroy", "detailed",
	"device", "devote", "diagnose", "dictate", "diet", "dining",
	"diploma", "disaster", "discuss", "disease", "dish", "dismiss",
	"display", "distance", "dive", "divorce", "document", "domain",
	"domestic", "dominant", "dough", "downtown", "dragon", "dramatic",
	"dream", "dress", "drift", "drink", "drove", "drug",
	"dryer", "duckling", "duke", "duration", "dwarf", "dynamic",
	"early", "earth", "easel", "easy", "echo", "eclipse",
	"ecology", "edge", "editor", "educate", "either", "elbow",
	"elder", "electric", "elegant", "element", "elephant", "elevator",
	"elite", "else", "email", "emerald", "emission", "emperor",
	"emphasis", "employer", "empty", "ending", "endless", "endorse",
	"enemy", "energy", "enforce", "engage", "enjoy", "enlarge",
	"entrance", "envelope", "envy", "epidemic", "episode", "equation",
	"equip", "eraser", "erode", "escape", "estate", "estimate",
	"evaluate", "evening", "evidence", "evil", "evoke", "exact",
	"example", "exceed", "exchange", "exclude", "excuse", "execute",
	"exercise", "exhaust", "exotic", "expand", "expect", "explain",
	"express", "extend", "extra", "eyebrow", "facility", "fact",
	"failure", "faint", "fake", "false", "family", "famous",
	"fancy", "fangs", "fantasy", "fatal", "fawn", "fiber",
	"fiction", "filter", "finance", "finger", "firefly", "firm",
	"fiscal", "fishing", "fitness", "flame", "flash", "flavor",
	"flea", "flexible", "flip", "float", "floral", "fluff",
	"focus", "forbid", "force", "forecast", "forget", "formal",
	"fortune", "forward", "founder", "fraction", "fragment", "frequent",
	"freshman", "friar", "fridge", "friendly", "frost", "froth",
	"frozen", "fumes", "function", "furl", "fused", "galaxy",
	"game", "garbage", "garden", "garlic", "gasoline", "gather",
	"general", "genius", "genre", "genuine", "geology", "gesture",
	"glad", "glance", "glasses", "glen", "glimpse", "goat",
	"golden", "good", "gravity", "gray", "greatest", "grief",
	"grill", "grim", "grocery", "gross", "group", "grownup",
	"grumpy", "guard", "guest", "guilt", "guitar", "gums",
	"hairy", "hamster", "hand", "hanger", "harvest", "have",
	"havoc", "hawk", "hazard", "headset", "health", "hearing",
	"heat", "helpful", "herald", "herd", "hesitate", "hobo",
	"holiday", "holy", "home", "homestead", "hospital", "hunting",
	"husband", "hush", "husky", "hybrid", "idea", "identify",
	"idle", "image", "impact", "imply", "improve", "impulse",
	"include", "income", "increase", "index", "indicate", "industry",
	"infant", "inform", "inherit", "injury", "inmate", "insect",
	"inside", "install", "intend", "intimate", "invasion", "involve",
	"iris", "island", "isolate", "item", "ivory", "jacket",
	"jerky", "jewelry", "join", "judicial", "juice", "jump",
	"junction", "junior", "junk", "jury", "justice", "kernel",
	"keyboard", "kidney", "kind", "kitchen", "kiwi", "knife",
	"knit", "laden", "ladle", "lair", "lamp", "language",
	"large", "laser", "laundry", "leader", "leaf", "learn",
	"leaves", "lecture", "legal", "legend", "legs", "lend",
	"length", "level", "liberty", "library", "license", "lift",
	"likely", "lilac", "lily", "lips", "liquid", "listen",
	"literary", "living", "lizard", "loan", "lobe", "location",
	"losing", "loud", "loyalty", "lunar", "lunch", "lungs",
	"luxury", "lying", "machine", "magazine", "maiden", "mailman",
	"main", "makeup", "making", "mama", "manager", "mandate",
	"mansion", "manual", "marathon", "march", "market", "marvel",
	"mason", "material", "math", "maximum", "mayor", "meaning",
	"medal", "medical", "member", "memory", "mental", "merchant",
	"merit", "method", "metric", "midst", "mild", "military",
	"mineral", "minister", "miracle", "mixed", "mixture", "mobile",
	"modify", "moisture", "moment", "morning", "mortgage", "mother",
	"mountain", "mouse", "move", "much", "multiple", "muscle",
	"museum", "music", "mustang", "nail", "national", "necklace",
	"negative", "nervous", "network", "news", "newt", "nuclear",
	"numb", "numerous", "nylon", "oasis", "obesity", "object",
	"obtain", "ocean", "often", "olympic", "omit", "oral",
	"orange", "orbit", "order", "ordinary", "organize", "ounce",
	"oven", "overall", "owner", "painting", "pajamas", "pancake",
	"pants", "papa", "paper", "parcel", "parking", "party",
	"patent", "patrol", "payment", "peaceful", "peanut", "peasant",
	"pecan", "penalty", "pencil", "percent", "perfect", "petition",
	"phantom", "philosophy", "photo", "phrase", "physics", "pickup",
	"picture", "pile", "pink", "pipeline", "pistol", "pitch",
	"plains", "plan", "plastic", "platform", "playoff", "pleasure",
	"plot", "plunge", "practice", "prayer", "preload", "prepare",
	"pretend", "prevent", "priest", "primary", "priority", "prisoner",
	"privacy", "prize", "problem", "process", "profile", "program",
	"promise", "prospect", "provide", "prune", "public", "pulse",
	"pumpkin", "punish", "puny", "pupal", "purchase", "purple",
	"python", "quantity", "quarter", "quick", "quiz", "race",
	"racism", "radar", "railroad", "rainbow", "raisin", "random",
	"ranked", "rapids", "raspy", "reaction", "realize", "rebound",
	"rebuild", "recall", "receiver", "recover", "regret", "regular",
	"reject", "relative", "reliable", "remember", "remind", "remove",
	"render", "repair", "repeat", "replace", "require", "rescue",
	"research", "resident", "response", "result", "retailer", "retreat",
	"reunion", "revenue", "review", "reward", "rhyme", "rhythm",
	"rich", "rival", "river", "rivet", "robin", "rocket",
	"romantic", "romp", "rosy", "royal", "ruin", "ruler",
	"rumor", "rural", "safari", "salary", "salon", "salt",
	"satisfy", "saver", "says", "scandal", "scared", "scatter",
	"scene", "scholar", "science", "scout", "scramble", "screw",
	"script", "scroll", "scrub", "scuba", "season", "secret",
	"security", "segment", "senior", "shadow", "shaft", "shame",
	"shaped", "sharp", "shelf", "shine", "shirt", "shrimp",
	"shrug", "side", "sidewalk", "silent", "silver", "similar",
	"simple", "single", "sister", "skin", "skunk", "slap",
	"slavery", "sled", "slice", "slim", "slow", "slush",
	"smart", "smear", "smell", "smirk", "smith", "smoking",
	"smug", "snake", "sniff", "society", "software", "soldier",
	"solution", "soul", "source", "space", "spark", "speak",
	"species", "spelling", "spend", "spew", "spider", "spill",
	"spine", "spirit", "spit", "splash", "spray", "sprinkle",
	"square", "squeeze", "stadium", "staff", "standard", "starting",
	"station", "stay", "steady", "step", "stick", "stilt",
	"story", "strategy", "strike", "style", "subject", "submit",
	"sugar", "suitable", "sunlight", "superior", "surface", "surprise",
	"survive", "sweater", "swimming", "swing", "symbolic", "sympathy",
	"syndrome", "system", "tackle", "tactics", "tadpole", "talent",
	"task", "taste", "taught", "taxi", "teacher", "teammate",
	"teaspoon", "temple", "tenant", "tendency", "tension", "terminal",
	"texture", "thank", "theater", "theory", "therapy", "thorn",
	"threaten", "thumb", "thunder", "ticket", "tidy", "timber",
	"timely", "ting", "tissue", "tofu", "tonight", "topic",
	"total", "toxic", "transfer", "trash", "traveler", "trend",
	"trial", "tribe", "tricycle", "trip", "triumph", "tropical",
	"trouble", "true", "trust", "tuition", "tunnel", "tutor",
	"twelve", "twice", "twin", "type", "typewriter", "typical",
	"ugly", "ultimate", "umbrella", "uncover", "undergo", "unfair",
	"unfold", "unhappy", "union", "unit", "unkind", "unknown",
	"unusual", "unwrap", "upgrade", "upstairs", "username", "usher",
	"usual", "vague", "valid", "valuable", "vampire", "vanish",
	"various", "vegan", "velvet", "venture", "verdict", "verify",
	"very", "veteran", "vexed", "victim", "video", "view",
	"vintage", "violence", "viral", "vision", "visitor", "visual",
	"vitamins", "vocal", "voice", "volume", "voter", "voting",
	"wallet", "walnut", "warmth", "warn", "wasp", "watch",
	"wavy", "wealthy", "weapon", "webcam", "welcome", "welfare",
	"western", "whale", "wheat", "whenever", "whisper", "widow",
	"width", "wildlife", "window", "wine", "wireless", "wisdom",
	"withdraw", "wits", "wolf", "woman", "work", "world",
	"worthy", "wrap", "wrist", "writing", "wrote", "year",
	"yelp", "yield", "yoga", "zero",
}

var wordIndex = func() map[string]uint16 {
	m := make(map[string]uint16, len(wordList))
	for i, w := range wordList {
		m[w] = uint16(i)
	}
	return m
}()

package sentiment

// lexicon maps lowercase tokens to AFINN valence scores in [-5, 5].
// Subset of the AFINN-165 word list covering the vocabulary seen in
// customer-support conversations.
var lexicon = map[string]float64{
	"abandon":      -2,
	"abuse":        -3,
	"accept":       1,
	"accepted":     1,
	"accomplish":   2,
	"accomplished": 2,
	"ache":         -2,
	"admire":       3,
	"adore":        3,
	"afraid":       -2,
	"aggravated":   -2,
	"agree":        1,
	"alarm":        -2,
	"alone":        -2,
	"amazing":      4,
	"anger":        -3,
	"angry":        -3,
	"annoy":        -2,
	"annoyed":      -2,
	"annoying":     -2,
	"anxious":      -2,
	"apology":      -1,
	"appalled":     -2,
	"appreciate":   2,
	"appreciated":  2,
	"approval":     2,
	"approved":     2,
	"assist":       2,
	"awesome":      4,
	"awful":        -3,
	"bad":          -3,
	"badly":        -3,
	"bastard":      -5,
	"beautiful":    3,
	"best":         3,
	"better":       2,
	"bitter":       -2,
	"blame":        -2,
	"block":        -1,
	"blocked":      -1,
	"bother":       -2,
	"brilliant":    4,
	"broke":        -1,
	"broken":       -1,
	"calm":         2,
	"cancel":       -1,
	"cancelled":    -1,
	"cant":         -1, // nonstandard but frequent in chat
	"care":         2,
	"careless":     -2,
	"charm":        3,
	"cheat":        -3,
	"cheated":      -3,
	"cheerful":     2,
	"clueless":     -2,
	"comfort":      2,
	"complain":     -2,
	"complaint":    -2,
	"confident":    2,
	"confused":     -2,
	"confusing":    -2,
	"convenient":   2,
	"cool":         1,
	"crap":         -3,
	"crash":        -2,
	"crashed":      -2,
	"damage":       -3,
	"damn":         -4,
	"dead":         -3,
	"delay":        -1,
	"delayed":      -1,
	"delight":      3,
	"delighted":    3,
	"deny":         -2,
	"denied":       -2,
	"desperate":    -3,
	"destroy":      -3,
	"difficult":    -1,
	"disappoint":   -2,
	"disappointed": -2,
	"disaster":     -2,
	"disgusted":    -3,
	"dishonest":    -2,
	"dispute":      -2,
	"distrust":     -3,
	"doubt":        -1,
	"dreadful":     -3,
	"easy":         1,
	"efficient":    2,
	"embarrassed":  -2,
	"emergency":    -2,
	"enjoy":        2,
	"enjoyed":      2,
	"error":        -2,
	"excellent":    3,
	"excited":      3,
	"fail":         -2,
	"failed":       -2,
	"failure":      -2,
	"fair":         2,
	"fantastic":    4,
	"fault":        -2,
	"favorite":     2,
	"fear":         -2,
	"fine":         2,
	"fix":          1,
	"fixed":        1,
	"fraud":        -4,
	"fraudulent":   -4,
	"frantic":      -1,
	"frustrated":   -2,
	"frustrating":  -2,
	"frustration":  -2,
	"furious":      -3,
	"generous":     2,
	"glad":         3,
	"good":         3,
	"grateful":     3,
	"great":        3,
	"greedy":       -2,
	"grief":        -2,
	"happy":        3,
	"hate":         -3,
	"hated":        -3,
	"hell":         -4,
	"help":         2,
	"helpful":      2,
	"helpless":     -2,
	"hopeless":     -2,
	"horrible":     -3,
	"hurt":         -2,
	"idiot":        -3,
	"ignore":       -1,
	"ignored":      -2,
	"impatient":    -2,
	"important":    2,
	"impossible":   -2,
	"improve":      2,
	"improved":     2,
	"incompetence": -2,
	"incompetent":  -2,
	"inconvenient": -2,
	"interested":   2,
	"issue":        -1,
	"issues":       -1,
	"joy":          3,
	"kind":         2,
	"kudos":        3,
	"lawsuit":      -2,
	"liar":         -3,
	"lie":          -2,
	"like":         2,
	"lost":         -3,
	"love":         3,
	"loved":        3,
	"lovely":       3,
	"lucky":        3,
	"mad":          -3,
	"marvelous":    3,
	"mess":         -2,
	"miserable":    -3,
	"miss":         -2,
	"missing":      -2,
	"mistake":      -2,
	"mistaken":     -2,
	"nervous":      -2,
	"nice":         3,
	"no":           -1,
	"nonsense":     -2,
	"outrage":      -3,
	"outraged":     -3,
	"outstanding":  5,
	"pathetic":     -2,
	"perfect":      3,
	"pleasant":     3,
	"please":       1,
	"pleased":      3,
	"poor":         -2,
	"problem":      -2,
	"problems":     -2,
	"protect":      1,
	"proud":        2,
	"quick":        1,
	"rage":         -2,
	"reject":       -1,
	"rejected":     -1,
	"relief":       1,
	"relieved":     2,
	"resolve":      2,
	"resolved":     2,
	"ridiculous":   -3,
	"robbed":       -2,
	"rude":         -2,
	"sad":          -2,
	"satisfied":    2,
	"scam":         -2,
	"scammed":      -2,
	"scared":       -2,
	"secure":       2,
	"shame":        -2,
	"shameful":     -2,
	"shit":         -4,
	"shocked":      -2,
	"slow":         -2,
	"smart":        1,
	"smooth":       2,
	"sorry":        -1,
	"steal":        -2,
	"stolen":       -2,
	"stop":         -1,
	"stress":       -1,
	"stressed":     -2,
	"struggle":     -2,
	"struggling":   -2,
	"stuck":        -2,
	"stupid":       -2,
	"succeed":      3,
	"success":      2,
	"support":      2,
	"sucks":        -3,
	"super":        3,
	"superb":       5,
	"terrible":     -3,
	"terribly":     -3,
	"thank":        2,
	"thanks":       2,
	"threat":       -2,
	"threaten":     -2,
	"trouble":      -2,
	"trust":        1,
	"trusted":      2,
	"ugly":         -3,
	"unable":       -2,
	"unacceptable": -2,
	"unbelievable": -1,
	"unfair":       -2,
	"unhappy":      -2,
	"unreliable":   -2,
	"unresolved":   -2,
	"upset":        -2,
	"urgent":       -1,
	"useful":       2,
	"useless":     -2,
	"waste":        -1,
	"wasted":       -2,
	"welcome":      2,
	"wonderful":    4,
	"worried":      -3,
	"worry":        -3,
	"worse":        -3,
	"worst":        -3,
	"wow":          4,
	"wrong":        -2,
	"wrongful":     -2,
	"yes":          1,
	"yucky":        -2,
}

package patterns

import "strings"

// Detector names
const (
	NameJobTitle        = "job-title"
	NameExecutive       = "executive"
	NamePersona         = "persona"
	NameDemographic     = "demographic"
	NameLocation        = "location"
	NameIntentSignal    = "intent-signal"
	NameB2BAttribute    = "b2b-attribute"
	NameForbiddenIntent = "forbidden-intent"
	NameVagueTerms      = "vague-terms"
	NameQuestion        = "question"
)

// filterPrepositions introduce a location filter ("people in Denver")
const filterPrepositions = `based in|located in|residing in|lives in|living in|in|from`

// KnownPlaces are place names that only count as a location filter after a
// filtering preposition.
var KnownPlaces = []string{
	"new york", "los angeles", "chicago", "houston", "phoenix", "philadelphia",
	"san antonio", "san diego", "dallas", "san francisco", "austin", "seattle",
	"boston", "miami", "denver", "atlanta", "nashville", "portland",
	"california", "texas", "florida", "new jersey",
}

// VagueTerms is the hype and filler vocabulary that weakens a query.
var VagueTerms = []string{
	"best", "top", "leading", "premium", "ultimate", "revolutionary",
	"cutting-edge", "innovative", "game-changing", "world-class", "premier",
	"amazing", "awesome", "great", "excellent", "perfect", "ideal",
	"stuff", "things", "various", "general", "misc", "etc", "anything",
}

// QuestionWords flag a query phrased as a question when they lead it.
var QuestionWords = []string{"what", "where", "when", "who", "why", "how", "which"}

var (
	// JobTitle matches compound role nouns such as "software engineers".
	JobTitle = NewDetector(NameJobTitle,
		`(?i)\b(?:software|senior|junior|lead|principal|staff|product|project|program|marketing|sales|data|financial|finance|business|ux|ui|graphic|web|mobile|frontend|front-end|backend|back-end|full[- ]stack|devops|security|cloud|hr|account|operations|it|qa|content|brand|creative|research)\s+(?:engineer|developer|manager|analyst|designer|architect|consultant|specialist|scientist|administrator|coordinator|representative|strategist|marketer|recruiter|writer|tester|associate)s?\b`,
		`(?i)\b(?:nurses|teachers|doctors|physicians|accountants|lawyers|attorneys|pharmacists|dentists|realtors|recruiters|freelancers|contractors)\b`,
	)

	// Executive matches leadership titles.
	Executive = NewDetector(NameExecutive,
		`(?i)\b(?:ceo|cto|cfo|coo|cmo|cio|cpo)s?\b`,
		`(?i)\b(?:co-?founders?|founders?)\b`,
		`(?i)\b(?:vice presidents?|presidents?|vps?)\b`,
		`(?i)\bchief\s+\w+(?:\s+officers?)?\b`,
		`(?i)\b(?:directors?|head of \w+)\b`,
		`(?i)\b(?:owners?|executives?|c-suite|c-level)\b`,
	)

	// Persona is the union of job-title and executive patterns.
	Persona = Combine(NamePersona, JobTitle, Executive)

	// Demographic matches age, gender, family, housing, income and education filters.
	Demographic = NewDetector(NameDemographic,
		`(?i)\b\d{1,2}\s*(?:-|to)\s*\d{1,2}\s*(?:years?[- ]old|yrs?|yo)\b`,
		`(?i)\bage[ds]?\s+\d{1,2}\b`,
		`(?i)\b(?:millennials|gen z|gen x|baby boomers|boomers|teenagers|teens|seniors|retirees)\b`,
		`(?i)\b(?:men|women|males?|females?|boys|girls|guys|ladies)\b`,
		`(?i)\b(?:married|unmarried|divorced|widowed|newlyweds?|single (?:men|women|people|adults))\b`,
		`(?i)\b(?:parents|moms?|dads?|mothers|fathers|grandparents)\b`,
		`(?i)\b(?:homeowners?|home owners?|renters?|homebuyers?|first[- ]time buyers)\b`,
		`(?i)\$?\d[\d,.]*k?\s*(?:-|to)\s*\$?\d[\d,.]*k?\+?\s+(?:household\s+)?(?:income|salary|net worth)\b`,
		`(?i)\b(?:high|low|middle|upper)[- ](?:income|net[- ]worth|class)\b`,
		`(?i)\b(?:income|salary|net worth)\s+(?:of\s+)?(?:over|above|under|below|between|more than|less than)\s*\$?\d[\d,.]*k?`,
		`(?i)\b(?:bachelor'?s|master'?s|phd|doctorate|mba|college|university|high school)\s+(?:degrees?|graduates?|grads|educated|students)\b`,
		`(?i)\bcollege[- ]educated\b`,
	)

	// Location matches a filtering preposition followed by a place. A place
	// name on its own is a topic, not a filter.
	Location = NewDetector(NameLocation,
		`\b(?i:`+filterPrepositions+`)\s+[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*\b`,
		`\b[A-Z][a-zA-Z]+\s+(?i:residents?|natives?|locals)\b`,
		`(?i)\b(?:residents|natives|locals) (?:of|in)\s+\w+`,
		`(?i)\b(?:`+filterPrepositions+`|near|around)\s+(?:the\s+)?(?:greater\s+)?(?:`+strings.Join(KnownPlaces, "|")+`)\b`,
	)

	// IntentSignal matches behavioral and psychological interest phrases.
	IntentSignal = NewDetector(NameIntentSignal,
		`(?i)\b(?:interested in|passionate about|enthusiastic about|curious about|obsessed with|cares? about)\b`,
		`(?i)\b(?:enthusiasts?|fans? of|lovers? of|hobbyists?|devotees?)\b`,
		`(?i)\b(?:struggl(?:e|es|ing) with|frustrated (?:by|with)|dealing with|suffer(?:s|ing)? from|pain points?)\b`,
		`(?i)\b(?:goals? (?:to|of)|aim(?:s|ing)? to|want(?:s|ing)? to|trying to|aspir(?:e|es|ing) to|working toward)\b`,
		`(?i)\b(?:hobby|hobbies|habits?|lifestyles?|routines?)\b`,
		`(?i)\b(?:believ(?:e|es|ing) in|support(?:s|ing)?|advocat(?:e|es|ing) for|advocates|committed to)\b`,
		`(?i)\b(?:engag(?:e|es|ed|ing) with|follow(?:s|ing)|subscrib(?:e|es|ed|ing) to|read(?:s|ing) about)\b`,
	)

	// B2BAttribute matches firmographic language.
	B2BAttribute = NewDetector(NameB2BAttribute,
		`(?i)\b(?:compan(?:y|ies)|business(?:es)?|enterprises?|firms?|corporations?|organizations?|agenc(?:y|ies)|vendors?|manufacturers?|retailers?|distributors?)\b`,
		`(?i)\b(?:start-?ups?|saas|b2b|b2c|smbs?|smes?|scale-?ups?|fortune \d+)\b`,
		`(?i)\b(?:industry|industries|sectors?|verticals?)\b`,
		`(?i)\b(?:annual\s+)?(?:revenue|arr|mrr|turnover)\b`,
		`(?i)\$\d+(?:\.\d+)?\s*[kmb]\b(?:\s*(?:-|to)\s*\$?\d+(?:\.\d+)?\s*[kmb]\b)?`,
		`(?i)\b\d[\d,]*(?:\s*(?:-|to)\s*\d[\d,]*)?\+?\s+(?:employees|staff|workers|seats)\b`,
		`(?i)\b(?:employees?|headcount|workforce)\b`,
		`(?i)\b(?:funded|funding|series [a-e]|seed[- ]stage|pre-seed|venture[- ]backed|vc[- ]backed|bootstrapped|valuation|ipo|publicly traded|raised)\b`,
		`(?i)\b(?:tech(?:nology)? stack|salesforce|hubspot|aws|azure|gcp|shopify|stripe|kubernetes|snowflake)\b`,
	)

	// ForbiddenIntent matches behavioral or temporal intent, which has no
	// place in a firmographic query.
	ForbiddenIntent = NewDetector(NameForbiddenIntent,
		`(?i)\binterested in\b`,
		`(?i)\blooking (?:for|to|into)\b`,
		`(?i)\bplanning (?:to|on)\b`,
		`(?i)\bhoping to\b`,
		`(?i)\b(?:recently|just|about to|going to|will|might|may)\s+[a-z]+\b`,
	)

	// Vague matches hype and filler terms, one pattern per term.
	Vague = NewDetector(NameVagueTerms, termPatterns(VagueTerms)...)

	// Question matches a leading question word or a literal question mark.
	Question = NewDetector(NameQuestion,
		`(?i)^\s*(?:`+strings.Join(QuestionWords, "|")+`)\b`,
		`\?`,
	)
)

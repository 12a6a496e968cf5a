package keyword

// stopWords is the hand-curated set of common determiners, pronouns,
// auxiliaries, conjunctions, and conversational filler excluded from
// keyword extraction. Length alone (>3) is not enough to separate signal
// from noise in transcribed speech.
var stopWords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "have": true, "has": true, "had": true, "were": true,
	"was": true, "are": true, "for": true, "not": true, "but": true,
	"you": true, "your": true, "yours": true, "our": true, "ours": true,
	"they": true, "them": true, "their": true, "theirs": true, "what": true,
	"which": true, "who": true, "whom": true, "when": true, "where": true,
	"why": true, "how": true, "all": true, "any": true, "both": true,
	"each": true, "few": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "only": true, "own": true, "same": true,
	"than": true, "too": true, "very": true, "can": true, "will": true,
	"just": true, "should": true, "now": true, "then": true, "there": true,
	"here": true, "about": true, "into": true, "over": true, "under": true,
	"again": true, "further": true, "once": true, "because": true,
	"while": true, "after": true, "before": true, "above": true,
	"below": true, "between": true, "during": true, "through": true,
	"would": true, "could": true, "might": true, "must": true, "shall": true,
	"been": true, "being": true, "does": true, "did": true, "doing": true,
	"yourself": true, "yourselves": true, "himself": true, "herself": true,
	"itself": true, "ourselves": true, "themselves": true,
	"something": true, "anything": true, "everything": true, "nothing": true,
	"someone": true, "anyone": true, "everyone": true, "whatever": true,
	"whoever": true, "whichever": true,
	"go": true, "going": true, "went": true, "gone": true,
	"know": true, "knew": true, "known": true, "knows": true,
	"like": true, "likes": true, "liked": true,
	"want": true, "wants": true, "wanted": true,
	"think": true, "thinks": true, "thought": true,
	"make": true, "makes": true, "made": true, "making": true,
	"said": true, "says": true, "saying": true,
	"look": true, "looks": true, "looked": true, "looking": true,
	"come": true, "comes": true, "came": true, "coming": true,
	"let": true, "lets": true,
	"still": true, "also": true, "actually": true, "basically": true,
	"really": true, "maybe": true, "probably": true, "kind": true,
	"sort": true, "thing": true, "things": true, "stuff": true,
	"okay": true, "yeah": true, "yes": true, "right": true, "well": true,
}

func isStopWord(word string) bool {
	return stopWords[word]
}

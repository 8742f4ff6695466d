package faq

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Entry is one FAQ question/answer under a section.
type Entry struct {
	Section  string `json:"section"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SearchResult pairs an entry with its similarity score against a query.
type SearchResult struct {
	Entry
	Score float64 `json:"score"`
}

// All returns the full FAQ catalog in display order.
func All() []Entry {
	return entries
}

// Sections returns the distinct section names in display order.
func Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Section] {
			seen[e.Section] = true
			out = append(out, e.Section)
		}
	}
	return out
}

// Search ranks FAQ entries against a free-text query and returns the best
// matches, highest score first. Ties keep catalog order.
func Search(query string, limit int) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}

	metric := metrics.NewJaroWinkler()
	results := make([]SearchResult, 0, len(entries))
	for _, e := range entries {
		score := strutil.Similarity(query, strings.ToLower(e.Question), metric)
		// Token containment beats pure edit distance for short queries.
		if strings.Contains(strings.ToLower(e.Question+" "+e.Answer), query) && score < 0.9 {
			score = 0.9
		}
		results = append(results, SearchResult{Entry: e, Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

var entries = []Entry{
	{
		Section:  "General",
		Question: "Is there any helpline for REAP-2024?",
		Answer:   "Yes. The Helpline No.- 0141-2702344, 9462015808, 9462015080 (Call between 9 AM to 6 PM Only)",
	},
	{
		Section:  "General",
		Question: "I passed my 10th and 12th from Rajasthan, still do I need a domicile certificate?",
		Answer:   "Yes, you require a domicile certificate of Rajasthan, otherwise you will be considered as an out of Rajasthan candidate.",
	},
	{
		Section:  "General",
		Question: "What is the validity of the Category Certificate (SC/ST/OBC/EWS-Gen.) and PwD certificate?",
		Answer:   "OBC certificate should not be issued before 01/09/2023. A grace period of two years is admissible with an undertaking. Undertaking by OBC/MBC (non-creamy layer) if within grace period. Certificates for PwD and Ex-Servicemen if applicable.",
	},
	{
		Section:  "General",
		Question: "What are the requirements for EWS candidates?",
		Answer:   "Income/eligibility and document requirements as per official guidelines.",
	},
	{
		Section:  "General",
		Question: "When will the Online Application form for REAP 2024-25 be available?",
		Answer:   "Registration starts 27/06/2024 onward. Websites: www.reapbtech24.com, www.reapbarch24.com.",
	},
	{
		Section:  "General",
		Question: "Whether the application fee excludes the Common Service charge?",
		Answer:   "Fee is Rs. 590 (Rs. 500 + 18% GST) per counseling mode. Non-refundable and non-transferable.",
	},
	{
		Section:  "General",
		Question: "What is the reservation criteria and seat matrix of REAP 2024-25?",
		Answer:   "See page 8 of the REAP booklet (web portal).",
	},
	{
		Section:  "General",
		Question: "What documents to carry at reporting?",
		Answer:   "See page 14 of the REAP booklet (web portal).",
	},
	{
		Section:  "Data Correction",
		Question: "How can I change the subject group I selected incorrectly?",
		Answer:   "Raise a ticket on the candidate panel and keep the ticket number.",
	},
	{
		Section:  "Data Correction",
		Question: "How can I change my options/choice if I filled them incorrectly?",
		Answer:   "Raise a ticket on the candidate panel and keep the ticket number.",
	},
	{
		Section:  "Data Correction",
		Question: "What is the procedure for filling the Online Application & College Choice Form?",
		Answer:   "1) Pay application/registration fee 2) Fill online application & choice form 3) Receive confirmation email/SMS 4) Print hardcopies after final submission",
	},
	{
		Section:  "Data Correction",
		Question: "Where can I check my subject group?",
		Answer:   "See page 28 of the REAP booklet.",
	},
	{
		Section:  "Data Correction",
		Question: "How can I correct personal details/income if I can't go back?",
		Answer:   "Raise a ticket on the candidate panel with all credentials.",
	},
	{
		Section:  "Transaction",
		Question: "My registration fee is deducted but registration is not done.",
		Answer:   "Use Check Transaction Status with your temporary transaction number. You'll get the permanent number by email (check spam too).",
	},
	{
		Section:  "Transaction",
		Question: "What should I do about a failed transaction?",
		Answer:   "If the gateway doesn't confirm in real time, payment isn't complete. Pay again online; the failed transaction amount will be refunded.",
	},
	{
		Section:  "Technical Issue",
		Question: "What should I do if I face technical issues on the website?",
		Answer:   "Clear browser cache or contact technical support.",
	},
	{
		Section:  "Technical Issue",
		Question: "How do I reset my account password?",
		Answer:   "Use the Forgot Password option on the login page.",
	},
}

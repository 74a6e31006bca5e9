package seedhandler

import "fmt"

const systemPrompt = "You generate realistic demo data for a job portal. Answer with a JSON array only, without markdown or comments."

func jobsPrompt(count int) string {
	return fmt.Sprintf("Generate %d diverse job postings for a tech job portal, with locations primarily in Lusaka and cities in the Copperbelt region of Zambia (e.g., Ndola, Kitwe, Chingola). "+
		"Each item is an object with string fields \"title\", \"company\", \"location\" (e.g. \"Kitwe, Zambia\") and \"description\" (2-3 sentences).", count)
}

func cvsPrompt(count int) string {
	return fmt.Sprintf("Generate %d diverse candidate profiles for a tech job portal. "+
		"Each item is an object with \"name\" (a realistic Zambian name, e.g. Bwalya, Temwani, Chipo), \"title\" (current job title), "+
		"\"skills\" (array of 3 key skills) and \"experience\" (array of 2 past experiences as short strings).", count)
}

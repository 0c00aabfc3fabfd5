package mail

type HotLeadAlertData struct {
	Name         string
	Email        string
	Company      string
	Problem      string
	AgentType    string
	Score        int
	EstimatedMRR int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	SalesTo  string
}

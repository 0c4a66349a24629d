package email

const subjectQuoteSummaryFmt = "Orçamento %s - Guialar"

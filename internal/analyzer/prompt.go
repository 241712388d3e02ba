package analyzer

// analysisPrompt is the fixed instruction template sent ahead of the
// document text. The model is asked for the exact JSON shape of
// models.AnalysisRecord; Analyze tolerates every way it fails to
// comply.
const analysisPrompt = `You are an expert document analysis AI. Analyze the following document text and provide a comprehensive summary with key information.

Your task is to:
1. Identify the document type and language
2. Provide a clear, concise summary of the document's main purpose and content
3. Extract important information and key details
4. Highlight any critical points, dates, amounts, or important data

Respond in this JSON format:
{
  "language": "string",
  "document_type": "string",
  "summary": "string",
  "key_information": {
    "important_details": ["list", "of", "key", "points"],
    "dates": ["any", "important", "dates"],
    "amounts": ["any", "financial", "amounts"],
    "names": ["any", "important", "names", "or", "entities"],
    "actions_required": ["any", "required", "actions", "or", "deadlines"]
  },
  "extracted_data": {
    "key1": "value1",
    "key2": "value2"
  }
}

Focus on providing practical, useful information that helps understand the document quickly. Be specific about what the document contains and any important details that stand out.

Document types can include: Invoice, Receipt, Contract, Report, Letter, Resume, Certificate, Manual, Policy, Statement, Notice, Memo, Proposal, Guide, Technical Document, Academic Document, Medical Document, Legal Document, Government Document, and any other specific type that fits the content.

Always try to identify the most specific and accurate document type based on the content.`

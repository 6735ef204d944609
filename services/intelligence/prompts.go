package ai

const chatInstruction = `You are a helpful healthcare assistant. Give concise, accurate information about health topics.
Be supportive and professional. Always recommend seeing a doctor or calling emergency services when symptoms sound serious.`

const symptomPromptTemplate = `Give critical medical guidance for the symptoms and description below.
Use simple language, address the reader directly and keep every point short and actionable.

Rules:
- At most 3 probable conditions, in layman's terms.
- "urgency" is one of "high", "medium" or "low".
- At most 8 actions, 2-5 items for each of what_to_avoid, common_symptoms and precautions.
- 2-3 links to trusted sources (Mayo Clinic, NHS, CDC, WHO).
- Put safety first when symptoms suggest an emergency.

Reply with a single JSON object and nothing else:
{
  "probable_medical_conditions": [string],
  "urgency": string,
  "action": [string],
  "what_to_avoid": [string],
  "common_symptoms": [string],
  "precautions": [string],
  "relevant_resources": [string]
}

Symptoms: %s
Description: %s`

const prescriptionImagePrompt = `This image is a medical prescription, possibly handwritten.
Extract the prescribed medications. For each one give the name, dosage, frequency, duration and any instructions,
one medication per line. If a field cannot be read, write "unclear". Do not guess missing values.
If the image is not a prescription, say so in one sentence.`

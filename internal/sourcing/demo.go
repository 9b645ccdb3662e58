package sourcing

// DemoJobDescription is the canned job used by the demo endpoint and the CLI
// when no job description file is provided.
const DemoJobDescription = `Software Engineer, ML Research
Windsurf • Full Time • Mountain View, CA • On-site • $140,000 – $300,000 + Equity

About the Company:
Windsurf (formerly Codeium) is a Forbes AI 50 company building the future of developer productivity through AI. With over 200 employees and $243M raised across multiple rounds including a Series C, Windsurf provides cutting-edge in-editor autocomplete, chat assistants, and full IDEs powered by proprietary LLMs.

Job Requirements:
• 2+ years in software engineering with fast promotions
• Strong software engineering and systems thinking skills
• Proven experience training and iterating on large production neural networks
• Strong GPA from a top CS undergrad program (MIT, Stanford, CMU, UIUC, etc.)
• Familiarity with tools like Copilot, ChatGPT, or Windsurf is preferred
• Deep curiosity for the code generation space
• Must be able to work in Mountain View, CA full-time onsite`

package scaffold

// RenderRunbook returns the default deployment runbook document. The shell
// steps are written so that `careerctl check` finds them internally
// consistent against the default repository manifest.
func RenderRunbook() string {
	return `# MyCareerAssist deployment runbook

## Local setup

` + "```bash" + `
git clone https://github.com/mycareerassist/mycareerassist.git
cd mycareerassist
python -m venv .venv
source .venv/bin/activate
pip install -r requirements.txt
mkdir .streamlit
cp .streamlit/secrets.toml.example .streamlit/secrets.toml
streamlit run MyCareerAssist.py
` + "```" + `

Fill in the credential values in ` + "`.streamlit/secrets.toml`" + ` before the
first run. The same keys can be supplied as environment variables instead.

## Publishing

1. Push the repository to your Git hosting provider.
2. In the hosting platform's UI, create a new app from the repository.
3. Set the main file path to MyCareerAssist.py.
4. Paste the contents of your secrets file into the platform's secrets field.
5. Click Deploy.

## Optional tooling

If you add a tests directory, the following commands apply:

` + "```bash" + `
pytest
flake8
black .
` + "```" + `
`
}

package profile

var (
	Summary = `I am a dual-focused professional: an Electrical and Information Engineering student passionate about AI/ML applications in industrial settings,
and a Business Analyst optimizing Tech infrastructure at a leading financial services organization.`

	ProjectObjective = `To predict the concentration of Carbon Monoxide (CO) and Nitrous Oxide (NOx) in cement production kilns using historical sensor data.
Accurate prediction helps in optimizing combustion and drastically reducing harmful emissions.`

	ProjectInsight = `The deep learning model (LSTM) and ensemble methods (XGBoost) significantly outperformed traditional linear models, capturing the non-linear dynamics of the kiln process.`

	ContactPitch = `Interested in discussing AI in Industry or Business Tech? Reach out at %s.`
)

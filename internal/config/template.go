package config

// Template is written by `tudu --init`.
const Template = `# TuDu configuration
# Location: ~/.config/tudu/config.yaml

editor:
  # Maximum description length in characters (0 = unlimited)
  char_limit: 250
  # Allow Enter to add an item with an empty description
  allow_empty_submit: false
  # Ring the bell when the description hits char_limit
  bell_on_limit: true

ui:
  title: "TuDu"
  # Size of the "Create a new TuDu" popup, in percent of the terminal
  popup_width_percent: 75
  popup_height_percent: 15
  show_status: true

log:
  # Empty level keeps logging off. One of: debug, info, warn, error
  level: ""
  # file: ~/.config/tudu/tudu.log
  max_size_mb: 5
  max_backups: 3
  max_age_days: 7
`

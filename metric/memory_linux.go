package metric

const maxrssInKilobytes = true
